// Package errs defines the closed set of sentinel errors returned by the
// scale codec. Every fallible operation in encoding and decoding surfaces one
// of these values (optionally wrapped with fmt.Errorf("%w: ...") to attach
// context such as an offset or an index), so callers can test for a specific
// failure with errors.Is regardless of the context message attached to it.
package errs

import "errors"

var (
	// ErrNotEnoughData is returned when the decoder runs out of input bytes
	// before a read could complete.
	ErrNotEnoughData = errors.New("scale: not enough data")

	// ErrUnexpectedValue is returned when a discriminant byte falls outside
	// its legal set: {0,1} for a bool or Option<T>, {0,1,2} for the
	// collapsed Option<Bool> encoding.
	ErrUnexpectedValue = errors.New("scale: unexpected value")

	// ErrWrongTypeIndex is returned when a sum-type variant index is greater
	// than or equal to the declared variant count.
	ErrWrongTypeIndex = errors.New("scale: variant index out of range")

	// ErrTooManyItems is returned when a length prefix would require
	// allocating more than the input could possibly supply, or exceeds the
	// configured zero-sized-element cap.
	ErrTooManyItems = errors.New("scale: declared length exceeds allowed budget")

	// ErrValueOutOfRange is returned when a compact integer exceeds 2^536-1
	// on encode, or (in strict mode) is encoded in a non-minimal form on
	// decode.
	ErrValueOutOfRange = errors.New("scale: value out of range")

	// ErrExtraData is returned by the full-consumption decode wrapper when
	// bytes remain in the input after the top-level value was decoded.
	ErrExtraData = errors.New("scale: extra data after decoded value")

	// ErrUnsupportedShape is returned when asked to encode a sum type with
	// more than 256 variants, or a signed compact integer.
	ErrUnsupportedShape = errors.New("scale: unsupported shape")
)
