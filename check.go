package ustarlist

import "io"

// scanEntries walks every entry in archive order, calling fn for each decoded
// header until fn asks to stop, the terminator block is reached, the source
// ends, or a header fails validation. End-of-source is treated exactly like
// the terminator. It returns the number of entries consumed; on a malformed
// header that count equals the failing header's index.
func (a *Archive) scanEntries(fn func(*Entry) (stop bool, err error)) (int, error) {
	c := &cursor{r: a.r}
	if err := c.rewind(); err != nil {
		return 0, err
	}
	var block [blockSize]byte
	for index := 0; ; index++ {
		headerPos := c.pos
		if err := c.readBlock(&block); err != nil {
			if err == io.EOF {
				return index, nil
			}
			return index, err
		}
		if isZeroBlock(&block) {
			return index, nil
		}
		if err := checkHeader(&block); err != nil {
			return index, &HeaderError{Index: index, Err: err}
		}
		e, span, err := decodeHeader(&block, index, headerPos)
		if err != nil {
			return index, &HeaderError{Index: index, Err: err}
		}
		if fn != nil {
			stop, err := fn(e)
			if err != nil {
				return index, err
			}
			if stop {
				return index + 1, nil
			}
		}
		if err := c.skip(span); err != nil {
			return index + 1, err
		}
	}
}

// Check validates the archive's structure and returns the number of
// non-terminator headers. Each header must carry the ustar magic, the "00"
// version and a checksum matching the space-substituted byte sum, enforced in
// that order; the first violation is reported as a HeaderError and aborts the
// scan. An archive that ends without a terminator block is still valid.
func (a *Archive) Check() (int, error) {
	return a.scanEntries(nil)
}
