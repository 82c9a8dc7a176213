package ustarlist

import (
	"bytes"
	"fmt"

	"github.com/javi11/ustarlist/internal/field"
)

// isZeroBlock reports whether the block is the all-zero end-of-archive
// sentinel. A terminator is not a decode error.
func isZeroBlock(block *[blockSize]byte) bool {
	for _, b := range block {
		if b != 0 {
			return false
		}
	}
	return true
}

// checksumOf sums all 512 header bytes as unsigned values, with the 8
// checksum-field bytes counted as ASCII spaces regardless of their content.
func checksumOf(block *[blockSize]byte) int64 {
	var sum int64
	for i, b := range block {
		if i >= chksumOff && i < chksumOff+chksumLen {
			sum += ' '
			continue
		}
		sum += int64(b)
	}
	return sum
}

// checkHeader enforces structural validity with fixed precedence: magic,
// then version, then checksum. The first failing check wins.
func checkHeader(block *[blockSize]byte) error {
	if !bytes.Equal(block[magicOff:magicOff+magicLen], ustarMagic) {
		return ErrBadMagic
	}
	if !bytes.Equal(block[versionOff:versionOff+versionLen], ustarVersion) {
		return ErrBadVersion
	}
	stored, err := field.ParseOctal(block[chksumOff : chksumOff+chksumLen])
	if err != nil || stored != checksumOf(block) {
		return ErrBadChecksum
	}
	return nil
}

// decodeHeader extracts an Entry from a well-formed header block. The second
// return value is the entry's content span: the literal size field rounded up
// to the next block boundary, used only for seeking past the content. The
// logical Size is zero for non-regular entries no matter what the field says.
func decodeHeader(block *[blockSize]byte, index int, headerPos int64) (*Entry, int64, error) {
	size, err := field.ParseOctal(block[sizeOff : sizeOff+sizeLen])
	if err != nil {
		return nil, 0, fmt.Errorf("size field: %w", err)
	}
	name := field.CString(block[nameOff : nameOff+nameLen])
	if prefix := field.CString(block[prefixOff : prefixOff+prefixLen]); prefix != "" {
		name = prefix + "/" + name
	}
	e := &Entry{
		Name:      name,
		Type:      TypeFlag(block[typeOff]),
		Linkname:  field.CString(block[linknameOff : linknameOff+linknameLen]),
		Index:     index,
		HeaderPos: headerPos,
		DataPos:   headerPos + blockSize,
	}
	if e.IsRegular() {
		e.Size = size
	}
	return e, contentSpan(size), nil
}

// contentSpan rounds n up to the next whole block.
func contentSpan(n int64) int64 {
	if r := n % blockSize; r != 0 {
		return n + blockSize - r
	}
	return n
}
