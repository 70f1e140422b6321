// Package format holds small enums shared by the envelope and compress
// packages — the wrapper around a raw CBE document stream. The core CBE
// wire format itself has no header and needs none of this; it is all
// ambient packaging for at-rest documents.
package format

// CompressionType identifies the algorithm used to compress an envelope
// payload. It is distinct from anything in the CBE grammar itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the document uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd compresses with Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 compresses with S2 (Snappy-compatible).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 compresses with LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
