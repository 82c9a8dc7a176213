package ustarlist

import (
	"fmt"
	"io"
)

// Archive provides read-only access to a POSIX ustar archive held in one
// seekable byte source. Every operation rewinds the source before scanning
// and leaves its position unspecified afterwards, so calls never depend on
// each other's cursor state. Operations seek the shared source, so
// concurrent calls on the same Archive must be serialized by the caller.
type Archive struct {
	r io.ReadSeeker
}

// NewArchive wraps an already-open seekable source. The caller keeps
// ownership of the source and closes it after the last operation.
func NewArchive(r io.ReadSeeker) *Archive {
	return &Archive{r: r}
}

// Entries returns every entry in archive order.
func (a *Archive) Entries() ([]Entry, error) {
	var out []Entry
	_, err := a.scanEntries(func(e *Entry) (bool, error) {
		out = append(out, *e)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Open opens the archive file at path with the default filesystem. The
// returned closer owns the underlying file.
func Open(path string) (*Archive, io.Closer, error) {
	return OpenFS(defaultFS, path)
}

// OpenFS works like Open but uses the provided FileSystem (useful for
// virtual / in-memory tests). The opened file must support seeking.
func OpenFS(fsys FileSystem, path string) (*Archive, io.Closer, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, err
	}
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, ErrNotSeekable)
	}
	return NewArchive(rs), f, nil
}

// ListEntries lists all entries of the archive file at path.
func ListEntries(path string) ([]Entry, error) {
	return ListEntriesFS(defaultFS, path)
}

// ListEntriesFS works like ListEntries but uses the provided FileSystem.
func ListEntriesFS(fsys FileSystem, path string) ([]Entry, error) {
	a, closer, err := OpenFS(fsys, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closer.Close() }()
	return a.Entries()
}
