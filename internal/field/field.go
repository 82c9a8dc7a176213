// Package field decodes the fixed-width ASCII fields of ustar headers.
package field

import "errors"

// ErrNonOctal is returned when a numeric field holds a non-octal digit.
var ErrNonOctal = errors.New("non-octal digit in numeric field")

// ParseOctal decodes an ASCII-octal numeric field. Leading spaces, trailing
// spaces and NUL terminators are tolerated; an empty field decodes to zero.
// Only non-octal-digit content is an error.
func ParseOctal(b []byte) (int64, error) {
	i := 0
	for i < len(b) && b[i] == ' ' {
		i++
	}
	var v int64
	for ; i < len(b); i++ {
		c := b[i]
		if c == 0 || c == ' ' {
			break
		}
		if c < '0' || c > '7' {
			return 0, ErrNonOctal
		}
		v = v<<3 | int64(c-'0')
	}
	for ; i < len(b); i++ {
		if b[i] != 0 && b[i] != ' ' {
			return 0, ErrNonOctal
		}
	}
	return v, nil
}

// CString returns the field content up to the first NUL byte.
func CString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
