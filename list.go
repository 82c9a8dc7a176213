package ustarlist

import (
	"errors"
	"fmt"
	"strings"
)

// List enumerates the direct children of the directory at path, in archive
// order. path is resolved through symlinks first and must denote a directory;
// otherwise ErrNotDirectory is returned, which is distinct from a successful
// empty listing. Matches are copied into entries up to len(entries); written
// is the number copied and total the number matched overall, so
// total > written signals truncation. A nil slice gives a pure count.
func (a *Archive) List(path string, entries []string) (written, total int, err error) {
	dir, err := a.Resolve(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrLinkResolve) {
			return 0, 0, fmt.Errorf("%s: %w", path, ErrNotDirectory)
		}
		return 0, 0, err
	}
	if !dir.IsDir() {
		return 0, 0, fmt.Errorf("%s: %w", dir.Name, ErrNotDirectory)
	}
	_, err = a.scanEntries(func(e *Entry) (bool, error) {
		if !isDirectChild(dir.Name, e.Name) {
			return false, nil
		}
		if total < len(entries) {
			entries[total] = e.Name
			written++
		}
		total++
		return false, nil
	})
	if err != nil {
		return written, total, err
	}
	return written, total, nil
}

// isDirectChild reports whether full names an immediate child of dir: dir is
// a literal prefix of full and the remainder holds at most one slash, which
// may only be its final byte. The entry equal to dir itself never matches.
func isDirectChild(dir, full string) bool {
	if full == dir || !strings.HasPrefix(full, dir) {
		return false
	}
	rest := full[len(dir):]
	if i := strings.IndexByte(rest, '/'); i >= 0 && i != len(rest)-1 {
		return false
	}
	return true
}
