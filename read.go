package ustarlist

import (
	"errors"
	"fmt"
	"io"
)

// ReadAt copies up to len(dest) bytes of the file at path starting at byte
// offset within its content. path is resolved through symlinks first; the
// terminal entry must be a regular file, else ErrNotFile. An offset at or
// past the file length fails with ErrOffsetOutOfRange, including offset 0 on
// an empty file. It returns the number of bytes copied and the number still
// unread after them: remaining 0 means the read reached end-of-file, and a
// follow-up call at offset+n continues where this one stopped.
func (a *Archive) ReadAt(path string, offset int64, dest []byte) (n int, remaining int64, err error) {
	e, err := a.Resolve(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrLinkResolve) {
			return 0, 0, fmt.Errorf("%s: %w", path, ErrNotFile)
		}
		return 0, 0, err
	}
	if !e.IsRegular() {
		return 0, 0, fmt.Errorf("%s: %w", e.Name, ErrNotFile)
	}
	if offset < 0 || offset >= e.Size {
		return 0, 0, fmt.Errorf("%s: offset %d of %d-byte file: %w", e.Name, offset, e.Size, ErrOffsetOutOfRange)
	}
	want := e.Size - offset
	if int64(len(dest)) < want {
		want = int64(len(dest))
	}
	if _, err := a.r.Seek(e.DataPos+offset, io.SeekStart); err != nil {
		return 0, 0, fmt.Errorf("seek content of %s: %w", e.Name, err)
	}
	n, err = io.ReadFull(a.r, dest[:want])
	remaining = e.Size - offset - int64(n)
	if err != nil {
		return n, remaining, fmt.Errorf("read content of %s: %w", e.Name, err)
	}
	return n, remaining, nil
}
