package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses encoded blobs with Zstandard. It trades
// compression speed for ratio, which suits archival and
// bandwidth-constrained transport of large encoded payloads.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a Zstd codec at the library's default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// EncodeAll and DecodeAll are safe for concurrent use on a shared instance
// and allocation-free after warmup, so the package holds one lazily built
// encoder and one decoder for all ZstdCompressor values.
var sharedZstdEncoder = sync.OnceValue(func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		panic(fmt.Sprintf("compress: zstd encoder options rejected: %v", err))
	}

	return encoder
})

var sharedZstdDecoder = sync.OnceValue(func() *zstd.Decoder {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		panic(fmt.Sprintf("compress: zstd decoder options rejected: %v", err))
	}

	return decoder
})

// Compress compresses data with Zstandard.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return sharedZstdEncoder().EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data, failing on corrupt or
// foreign input.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := sharedZstdDecoder().DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
