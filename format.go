package ustarlist

// POSIX ustar fixed header layout. Every header occupies exactly one
// 512-byte block; field positions are byte offsets within that block.

const blockSize = 512

const (
	nameOff     = 0
	nameLen     = 100
	sizeOff     = 124
	sizeLen     = 12
	chksumOff   = 148
	chksumLen   = 8
	typeOff     = 156
	linknameOff = 157
	linknameLen = 100
	magicOff    = 257
	magicLen    = 6
	versionOff  = 263
	versionLen  = 2
	prefixOff   = 345
	prefixLen   = 155
)

var (
	ustarMagic   = []byte("ustar\x00") // "ustar" and a NUL
	ustarVersion = []byte("00")        // "00", no NUL
)

// TypeFlag is the single-byte entry type stored at offset 156.
type TypeFlag byte

const (
	TypeRegular       TypeFlag = '0'
	TypeRegularLegacy TypeFlag = 0 // pre-POSIX archives store NUL for regular files
	TypeSymlink       TypeFlag = '2'
	TypeDirectory     TypeFlag = '5'
)
