package compress

// NoOpCompressor stores a CBE document verbatim, with no compression.
//
// Useful when the document is small enough that the compression header
// overhead isn't worth paying, when the payload is already compressed
// upstream, or for benchmarking the encoder/decoder without a codec in
// the way.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged; the caller must not mutate it
// afterward since the returned slice aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged; the caller must not mutate it
// afterward since the returned slice aliases the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
