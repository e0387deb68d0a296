package compress

import (
	"fmt"

	"github.com/go-scale/scale"
	"github.com/go-scale/scale/codec"
	"github.com/go-scale/scale/internal/options"
)

// EncodeCompressed marshals v as SCALE bytes (via scale.Marshal), compresses
// the result with algo, and prepends a single CompressionType byte so the
// blob is self-describing. The wire format itself never carries this tag;
// it exists only in the envelope compress produces, one layer outside
// anything a Decoder ever reads.
func EncodeCompressed(algo CompressionType, v codec.Encodable, opts ...options.Option[*codec.Config]) ([]byte, error) {
	raw, err := scale.Marshal(v, opts...)
	if err != nil {
		return nil, err
	}

	c, err := GetCodec(algo)
	if err != nil {
		return nil, err
	}

	compressed, err := c.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	out := make([]byte, 0, 1+len(compressed))
	out = append(out, byte(algo))
	out = append(out, compressed...)

	return out, nil
}

// DecodeCompressed reverses EncodeCompressed: it reads the leading
// CompressionType byte, decompresses the remainder with the matching codec,
// and unmarshals the recovered bytes into v via scale.Unmarshal.
func DecodeCompressed(data []byte, v codec.Decodable, opts ...options.Option[*codec.Config]) error {
	if len(data) < 1 {
		return fmt.Errorf("compress: envelope too short to carry a CompressionType")
	}

	c, err := GetCodec(CompressionType(data[0]))
	if err != nil {
		return err
	}

	raw, err := c.Decompress(data[1:])
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	return scale.Unmarshal(raw, v, opts...)
}
