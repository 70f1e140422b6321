package envelope

import "github.com/cbe-go/cbe/format"

// Flags is a packed header field describing how a document's payload was
// wrapped: which compression algorithm was applied and whether a trailing
// checksum footer is present.
//
// Bit layout:
//
//	bits 0-3:  format.CompressionType
//	bit  4:    checksum-present
//	bits 5-15: reserved, must be zero
type Flags uint16

const (
	compressionMask = 0x000F
	checksumMask    = 0x0010
	reservedMask    = 0xFFE0
)

// newFlags packs a compression algorithm and checksum-present bit.
func newFlags(compression format.CompressionType, hasChecksum bool) Flags {
	f := Flags(compression) & compressionMask
	if hasChecksum {
		f |= checksumMask
	}

	return f
}

// Compression returns the compression algorithm bits.
func (f Flags) Compression() format.CompressionType {
	return format.CompressionType(f & compressionMask)
}

// HasChecksum reports whether a trailing xxHash64 checksum follows the
// payload.
func (f Flags) HasChecksum() bool {
	return f&checksumMask != 0
}

// Valid reports whether the reserved bits are zero and the compression
// algorithm is one compress.GetCodec recognizes.
func (f Flags) Valid() bool {
	if f&reservedMask != 0 {
		return false
	}

	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}
