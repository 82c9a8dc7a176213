package ustarlist

import (
	"errors"
	"fmt"
	"io"
)

// cursor walks an archive source one block at a time. All positioning goes
// through it: scans rewind on entry and never depend on where a previous
// operation left the source.
type cursor struct {
	r   io.ReadSeeker
	pos int64
}

func (c *cursor) rewind() error {
	if _, err := c.r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	c.pos = 0
	return nil
}

func (c *cursor) skip(n int64) error {
	if n == 0 {
		return nil
	}
	if _, err := c.r.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("skip %d bytes at offset %d: %w", n, c.pos, err)
	}
	c.pos += n
	return nil
}

// readBlock fills block with the next 512 bytes. io.EOF means end-of-source;
// a partial trailing block counts as end-of-source too.
func (c *cursor) readBlock(block *[blockSize]byte) error {
	start := c.pos
	n, err := io.ReadFull(c.r, block[:])
	c.pos += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return io.EOF
		}
		return fmt.Errorf("read block at offset %d: %w", start, err)
	}
	return nil
}
