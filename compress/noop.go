package compress

// NoOpCompressor passes data through unchanged. It keeps one code path open
// for callers whether or not a payload is worth compressing, and serves as
// the baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a passthrough codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The result aliases the input; callers that
// go on to mutate the input must copy first.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, under the same aliasing caveat as Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
