package codec

import (
	"fmt"

	"github.com/go-scale/scale/compact"
	"github.com/go-scale/scale/endian"
	"github.com/go-scale/scale/errs"
	"github.com/go-scale/scale/internal/options"
	"github.com/go-scale/scale/internal/pool"
)

// Encoder is an append-only SCALE byte builder. Writes never fail on their
// own account; the only failures an Encoder surfaces are VALUE_OUT_OF_RANGE
// for an oversized compact integer, EncodeSum's rejection of a sum with more
// than 256 variants or an out-of-range index, and whatever a caller-supplied
// Encodable returns. An Encoder is owned by a single goroutine and is
// invalidated by Finish.
type Encoder struct {
	buf    *pool.ByteBuffer
	cfg    *Config
	engine endian.EndianEngine
}

// NewEncoder creates an Encoder backed by a pooled byte buffer. Fixed-width
// integers are always written through endian.GetLittleEndianEngine(), so
// the wire's byte order is bound at a single call site instead of being
// scattered as binary.LittleEndian calls through every Encode method.
func NewEncoder(opts ...options.Option[*Config]) *Encoder {
	return &Encoder{
		buf:    pool.GetBuffer(),
		cfg:    NewConfig(opts...),
		engine: endian.GetLittleEndianEngine(),
	}
}

// Len reports the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Finish returns the accumulated bytes and invalidates the Encoder. The
// returned slice is a copy; the Encoder's internal buffer is returned to its
// pool and must not be used afterward.
func (e *Encoder) Finish() []byte {
	if e.buf == nil {
		panic("codec: encoder already finished")
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())

	pool.PutBuffer(e.buf)
	e.buf = nil

	return out
}

// EncodeBool writes a single byte: 0x00 for false, 0x01 for true.
func (e *Encoder) EncodeBool(v bool) {
	b := byte(0)
	if v {
		b = 1
	}

	e.buf.Grow(1)
	e.buf.MustWrite([]byte{b})
}

// EncodeUint8 writes v as a single byte.
func (e *Encoder) EncodeUint8(v uint8) {
	e.buf.Grow(1)
	e.buf.MustWrite([]byte{v})
}

// EncodeInt8 writes v as a single byte, preserving its two's-complement bit
// pattern.
func (e *Encoder) EncodeInt8(v int8) {
	e.EncodeUint8(uint8(v))
}

// EncodeUint16 writes v as 2 little-endian bytes.
func (e *Encoder) EncodeUint16(v uint16) {
	e.buf.Grow(2)
	e.buf.B = e.engine.AppendUint16(e.buf.B, v)
}

// EncodeInt16 writes v as 2 little-endian bytes.
func (e *Encoder) EncodeInt16(v int16) {
	e.EncodeUint16(uint16(v))
}

// EncodeUint32 writes v as 4 little-endian bytes.
func (e *Encoder) EncodeUint32(v uint32) {
	e.buf.Grow(4)
	e.buf.B = e.engine.AppendUint32(e.buf.B, v)
}

// EncodeInt32 writes v as 4 little-endian bytes.
func (e *Encoder) EncodeInt32(v int32) {
	e.EncodeUint32(uint32(v))
}

// EncodeUint64 writes v as 8 little-endian bytes.
func (e *Encoder) EncodeUint64(v uint64) {
	e.buf.Grow(8)
	e.buf.B = e.engine.AppendUint64(e.buf.B, v)
}

// EncodeInt64 writes v as 8 little-endian bytes.
func (e *Encoder) EncodeInt64(v int64) {
	e.EncodeUint64(uint64(v))
}

// EncodeUint128 writes v as 16 little-endian bytes: Lo's bytes followed by
// Hi's bytes.
func (e *Encoder) EncodeUint128(v Uint128) {
	e.buf.Grow(16)
	e.buf.B = e.engine.AppendUint64(e.buf.B, v.Lo)
	e.buf.B = e.engine.AppendUint64(e.buf.B, v.Hi)
}

// EncodeInt128 writes v as 16 little-endian bytes in the same layout as
// EncodeUint128.
func (e *Encoder) EncodeInt128(v Int128) {
	e.EncodeUint128(Uint128{Lo: v.Lo, Hi: uint64(v.Hi)})
}

// EncodeCompact writes n using the smallest compact-integer mode that fits.
func (e *Encoder) EncodeCompact(n uint64) {
	compact.EncodeUint64(e.buf, n)
}

// EncodeCompactBig writes an arbitrary-precision unsigned value, given as
// little-endian bytes, using the smallest compact-integer mode that fits.
// It fails with errs.ErrValueOutOfRange when the trimmed value needs more
// than compact.MaxBigBytes bytes.
func (e *Encoder) EncodeCompactBig(leBytes []byte) error {
	return compact.EncodeBig(e.buf, leBytes)
}

// EncodeOptionBool writes the collapsed Option<Bool> encoding: 0 for nil
// (absent), 1 for a present true, 2 for a present false.
func (e *Encoder) EncodeOptionBool(v *bool) {
	b := byte(0)
	switch {
	case v == nil:
		b = 0
	case *v:
		b = 1
	default:
		b = 2
	}

	e.buf.Grow(1)
	e.buf.MustWrite([]byte{b})
}

// EncodeOption writes the one-byte discriminant (0 absent, 1 present)
// followed by encode's output when present is true.
func (e *Encoder) EncodeOption(present bool, encode func(*Encoder) error) error {
	if !present {
		e.buf.Grow(1)
		e.buf.MustWrite([]byte{0})

		return nil
	}

	e.buf.Grow(1)
	e.buf.MustWrite([]byte{1})

	return encode(e)
}

// EncodeSum writes a one-byte variant index followed by payload's output.
// numVariants above 256 fails with errs.ErrUnsupportedShape; index outside
// [0, numVariants) fails with errs.ErrWrongTypeIndex.
func (e *Encoder) EncodeSum(index int, numVariants int, payload func(*Encoder) error) error {
	if numVariants > 256 {
		return fmt.Errorf("%w: sum declares %d variants, max 256", errs.ErrUnsupportedShape, numVariants)
	}

	if index < 0 || index >= numVariants {
		return fmt.Errorf("%w: index %d, variant count %d", errs.ErrWrongTypeIndex, index, numVariants)
	}

	e.buf.Grow(1)
	e.buf.MustWrite([]byte{byte(index)})

	return payload(e)
}

// EncodeBitSequence writes a compact length prefix followed by one byte per
// bool, unpacked (no bit-packing despite the name).
func (e *Encoder) EncodeBitSequence(bits []bool) {
	e.EncodeCompact(uint64(len(bits)))

	e.buf.Grow(len(bits))
	for _, b := range bits {
		e.EncodeBool(b)
	}
}

// EncodeString writes a compact length prefix followed by s's raw bytes. The
// codec neither validates nor normalizes UTF-8; that is left to the caller.
func (e *Encoder) EncodeString(s string) {
	e.EncodeCompact(uint64(len(s)))

	e.buf.Grow(len(s))
	e.buf.MustWrite([]byte(s))
}

// EncodeProduct writes each field's encoding in order, with no separator.
func (e *Encoder) EncodeProduct(fields ...Encodable) error {
	for _, f := range fields {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes v's encoding by delegating to its Encodable implementation.
func (e *Encoder) Encode(v Encodable) error {
	return v.EncodeTo(e)
}
