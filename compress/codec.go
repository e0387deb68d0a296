package compress

import "fmt"

// Compressor compresses an already SCALE-encoded byte blob for storage or
// transport. It operates on the output of an Encoder, never on SCALE
// primitives themselves.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output back to the original bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType. All built-in
// codecs are stateless values safe for concurrent use.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[compressionType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
