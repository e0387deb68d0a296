package compress

// CompressionType identifies an algorithm for compressing an already
// SCALE-encoded byte blob at rest or in transit. Compression sits strictly
// outside the wire format: a decoder never sees a CompressionType, only the
// plain bytes produced after Decompress.
type CompressionType uint8

const (
	// CompressionNone passes data through unchanged.
	CompressionNone CompressionType = iota
	// CompressionZstd uses Zstandard, favoring compression ratio.
	CompressionZstd
	// CompressionS2 uses S2 (a Snappy derivative), favoring speed.
	CompressionS2
	// CompressionLZ4 uses LZ4, favoring low decompression latency.
	CompressionLZ4
)

// String returns the canonical lowercase name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
