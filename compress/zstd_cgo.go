//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses a CBE document with Zstd via the cgo-backed gozstd
// binding, used when cgo is available for its faster native codec.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a document previously compressed with Zstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
