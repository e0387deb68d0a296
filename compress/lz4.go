package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/go-scale/scale/compact"
	"github.com/go-scale/scale/internal/pool"
)

// LZ4Compressor compresses encoded blobs as a single LZ4 block, favoring
// decompression latency over ratio. Suited to read-heavy paths that
// decompress far more often than they compress.
//
// An LZ4 block does not record its decompressed size, so Compress prefixes
// the block with one compact integer holding size<<1|raw: the original
// byte count, and a low bit marking payloads stored verbatim because the
// block compressor found them incompressible. Decompress reads the header,
// bounds it, and inflates into an exactly sized buffer in one call.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// lz4.Compressor carries internal match-table state worth reusing across
// calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxDeclaredSize caps the size a header may declare, so a corrupt or
// adversarial input cannot demand an arbitrarily large allocation.
const lz4MaxDeclaredSize = 128 * 1024 * 1024

// NewLZ4Compressor creates an LZ4 block codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress writes the size header followed by the compressed block, or by
// data verbatim when the block compressor reports it incompressible.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	block := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, block)
	if err != nil {
		return nil, err
	}

	header := pool.NewByteBuffer(10)
	if n == 0 {
		// CompressBlock signals incompressible input with n == 0.
		compact.EncodeUint64(header, uint64(len(data))<<1|1)
		return append(header.Bytes(), data...), nil
	}

	compact.EncodeUint64(header, uint64(len(data))<<1)

	return append(header.Bytes(), block[:n]...), nil
}

// Decompress reads the size header and inflates the block that follows it.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	v, consumed, err := compact.Decode(data, false)
	if err != nil {
		return nil, fmt.Errorf("lz4 size header: %w", err)
	}

	word, fits := v.Uint64()
	if !fits {
		return nil, fmt.Errorf("lz4 size header does not fit in 64 bits")
	}

	size := word >> 1
	if size > lz4MaxDeclaredSize {
		return nil, fmt.Errorf("lz4 declared size %d exceeds %d byte limit", size, lz4MaxDeclaredSize)
	}

	payload := data[consumed:]
	if word&1 == 1 {
		if uint64(len(payload)) != size {
			return nil, fmt.Errorf("lz4 raw payload is %d bytes, header declared %d", len(payload), size)
		}

		out := make([]byte, size)
		copy(out, payload)

		return out, nil
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(payload, out)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4 block inflated to %d bytes, header declared %d", n, size)
	}

	return out, nil
}
