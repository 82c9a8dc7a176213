package ustarlist

import (
	"errors"
	"fmt"
)

// Entry describes one archive record as decoded from its header block.
type Entry struct {
	Name      string   // full path: prefix + "/" + name when the prefix field is set
	Type      TypeFlag // stored typeflag byte, unrecognized values carried through
	Size      int64    // logical content length; zero for non-regular entries
	Linkname  string   // symlink target, meaningful only when Type is TypeSymlink
	Index     int      // position in archive order, 0-based
	HeaderPos int64    // offset of the header block within the source
	DataPos   int64    // offset of the first content byte within the source
}

// IsRegular reports whether the entry is a regular file (POSIX or pre-POSIX flag).
func (e *Entry) IsRegular() bool { return e.Type == TypeRegular || e.Type == TypeRegularLegacy }

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool { return e.Type == TypeDirectory }

// IsSymlink reports whether the entry is a symbolic link.
func (e *Entry) IsSymlink() bool { return e.Type == TypeSymlink }

// Sentinel errors surfaced by the public API.
var (
	ErrBadMagic         = errors.New("invalid magic")
	ErrBadVersion       = errors.New("invalid version")
	ErrBadChecksum      = errors.New("invalid checksum")
	ErrNotFound         = errors.New("entry not found")
	ErrNotDirectory     = errors.New("not a directory")
	ErrNotFile          = errors.New("not a regular file")
	ErrNotSymlink       = errors.New("not a symlink")
	ErrOffsetOutOfRange = errors.New("offset outside file length")
	ErrLinkResolve      = errors.New("symlink resolution failed")
	ErrNotSeekable      = errors.New("source is not seekable")
)

// HeaderError reports which header failed structural validation. Offsets past
// a malformed header cannot be trusted, so scans stop at the first one.
type HeaderError struct {
	Index int // 0-based header position in the archive
	Err   error
}

func (e *HeaderError) Error() string { return fmt.Sprintf("header %d: %v", e.Index, e.Err) }

func (e *HeaderError) Unwrap() error { return e.Err }
