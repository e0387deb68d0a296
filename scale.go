// Package scale implements the SCALE (Simple Concatenated Aggregate
// Little-Endian) binary serialization format used by Polkadot/Substrate-family
// systems. It converts values of a closed set of structural shapes
// (booleans, fixed-width and compact integers, options, sums, products,
// fixed arrays, sequences, maps, bit-sequences, and strings) to and from a
// contiguous, bit-exact byte sequence.
//
// The engine lives in the codec subpackage (Encoder, Decoder, the Encodable
// and Decodable capability interfaces). This package wraps it with
// construct-encode-finalize and construct-decode convenience functions for
// the common case of a single top-level value.
package scale

import (
	"github.com/go-scale/scale/codec"
	"github.com/go-scale/scale/errs"
	"github.com/go-scale/scale/internal/options"
)

// Marshal encodes v and returns the resulting bytes.
func Marshal(v codec.Encodable, opts ...options.Option[*codec.Config]) ([]byte, error) {
	e := codec.NewEncoder(opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return e.Finish(), nil
}

// Unmarshal decodes data into v. If the decoder is configured with
// codec.WithFullConsumption, bytes remaining after v is decoded fail with
// errs.ErrExtraData.
func Unmarshal(data []byte, v codec.Decodable, opts ...options.Option[*codec.Config]) error {
	cfg := codec.NewConfig(opts...)
	d := codec.NewDecoder(data, opts...)

	if err := d.Decode(v); err != nil {
		return err
	}

	if cfg.FullConsumption() && d.Remaining() > 0 {
		return errs.ErrExtraData
	}

	return nil
}

// NewEncoder creates a codec.Encoder, re-exported for callers that want to
// build up a value across multiple append calls instead of a single
// Encodable.
func NewEncoder(opts ...options.Option[*codec.Config]) *codec.Encoder {
	return codec.NewEncoder(opts...)
}

// NewDecoder creates a codec.Decoder over data, re-exported for callers that
// want to read a value across multiple calls instead of a single Decodable.
func NewDecoder(data []byte, opts ...options.Option[*codec.Config]) *codec.Decoder {
	return codec.NewDecoder(data, opts...)
}
