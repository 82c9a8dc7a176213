package ustarlist

import (
	"errors"
	"fmt"
)

// Find returns the first entry in archive order whose full path byte-equals
// path. No normalization is applied: "dir" and "dir/" are different paths.
func (a *Archive) Find(path string) (*Entry, error) {
	var found *Entry
	_, err := a.scanEntries(func(e *Entry) (bool, error) {
		if e.Name == path {
			found = e
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return found, nil
}

// Resolve follows symlink chains until a non-symlink entry is reached and
// returns that terminal entry. Linknames are treated as literal archive
// paths. The hop bound is the archive's entry count: a terminating chain
// cannot visit more entries than the archive holds, so exceeding it means a
// cycle. Dangling targets and cycles both fail with ErrLinkResolve; for a
// dangling target the error also matches ErrNotFound.
func (a *Archive) Resolve(path string) (*Entry, error) {
	e, err := a.Find(path)
	if err != nil {
		return nil, err
	}
	if !e.IsSymlink() {
		return e, nil
	}
	bound, err := a.scanEntries(nil)
	if err != nil {
		return nil, err
	}
	for hops := 0; e.IsSymlink(); hops++ {
		if hops >= bound {
			return nil, fmt.Errorf("%s: %w: link chain exceeds %d hops", path, ErrLinkResolve, bound)
		}
		next, err := a.Find(e.Linkname)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%s: %w: dangling target: %w", path, ErrLinkResolve, err)
			}
			return nil, err
		}
		e = next
	}
	return e, nil
}

// Exists reports whether an entry at path is present. Symlinks are not
// resolved: a symlink entry exists regardless of its target.
func (a *Archive) Exists(path string) (bool, error) {
	return a.hasType(path, func(*Entry) bool { return true })
}

// IsDir reports whether an entry at path exists and is a directory.
func (a *Archive) IsDir(path string) (bool, error) {
	return a.hasType(path, (*Entry).IsDir)
}

// IsFile reports whether an entry at path exists and is a regular file.
func (a *Archive) IsFile(path string) (bool, error) {
	return a.hasType(path, (*Entry).IsRegular)
}

// IsSymlink reports whether an entry at path exists and is a symlink. It
// answers about the entry as stored, never about its target.
func (a *Archive) IsSymlink(path string) (bool, error) {
	return a.hasType(path, (*Entry).IsSymlink)
}

func (a *Archive) hasType(path string, match func(*Entry) bool) (bool, error) {
	e, err := a.Find(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return match(e), nil
}

// Readlink returns the stored link target of the symlink entry at path,
// without resolving it.
func (a *Archive) Readlink(path string) (string, error) {
	e, err := a.Find(path)
	if err != nil {
		return "", err
	}
	if !e.IsSymlink() {
		return "", fmt.Errorf("%s: %w", path, ErrNotSymlink)
	}
	return e.Linkname, nil
}
