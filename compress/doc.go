// Package compress provides pluggable compression codecs for at-rest CBE
// documents.
//
// The CBE wire format itself is a raw, uncompressed tag stream;
// compression is an ambient concern applied by the envelope
// package and the cbedump CLI after a document has already been fully
// encoded, never inside the encoder/decoder hot path.
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Supported algorithms: None (fastest), Zstd (best ratio), S2 (balanced),
// LZ4 (fastest decompression). Select one with format.CompressionType and
// CreateCodec, or let envelope.Wrap pick per its own options.
package compress
