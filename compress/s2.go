package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses encoded blobs with S2, a Snappy derivative that
// balances throughput and ratio. It is the middle ground between Zstd's
// ratio and LZ4's latency.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data with S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
