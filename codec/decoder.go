package codec

import (
	"fmt"

	"github.com/go-scale/scale/compact"
	"github.com/go-scale/scale/endian"
	"github.com/go-scale/scale/errs"
	"github.com/go-scale/scale/internal/options"
	"github.com/go-scale/scale/internal/pool"
)

// Decoder is a forward-only cursor over a borrowed byte span. It never
// copies or extends the lifetime of the span it was constructed with, and
// its offset only ever advances.
type Decoder struct {
	data   []byte
	pos    int
	cfg    *Config
	engine endian.EndianEngine
}

// NewDecoder creates a Decoder reading from data, which must outlive the
// Decoder. Fixed-width integers are read back through the same
// endian.GetLittleEndianEngine() the Encoder writes with, so the two sides
// of the codec share one byte-order authority.
func NewDecoder(data []byte, opts ...options.Option[*Config]) *Decoder {
	return &Decoder{
		data:   data,
		cfg:    NewConfig(opts...),
		engine: endian.GetLittleEndianEngine(),
	}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// HasMore reports whether at least n bytes remain unread. It does not
// advance the cursor.
func (d *Decoder) HasMore(n int) bool {
	return d.Remaining() >= n
}

// NextByte returns the byte at the cursor and advances by one, or fails with
// errs.ErrNotEnoughData at end of input.
func (d *Decoder) NextByte() (byte, error) {
	if !d.HasMore(1) {
		return 0, errs.ErrNotEnoughData
	}

	b := d.data[d.pos]
	d.pos++

	return b, nil
}

// take returns the next n bytes and advances the cursor, or fails with
// errs.ErrNotEnoughData if fewer than n bytes remain.
func (d *Decoder) take(n int) ([]byte, error) {
	if !d.HasMore(n) {
		return nil, errs.ErrNotEnoughData
	}

	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

// DecodeBool reads one byte; 0x00 is false, 0x01 is true, anything else
// fails with errs.ErrUnexpectedValue.
func (d *Decoder) DecodeBool() (bool, error) {
	b, err := d.NextByte()
	if err != nil {
		return false, err
	}

	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("%w: bool byte 0x%02x", errs.ErrUnexpectedValue, b)
	}
}

// DecodeUint8 reads one byte.
func (d *Decoder) DecodeUint8() (uint8, error) {
	b, err := d.NextByte()
	if err != nil {
		return 0, err
	}

	return b, nil
}

// DecodeInt8 reads one byte, reinterpreting its two's-complement bit pattern.
func (d *Decoder) DecodeInt8() (int8, error) {
	v, err := d.DecodeUint8()
	return int8(v), err
}

// DecodeUint16 reads 2 little-endian bytes.
func (d *Decoder) DecodeUint16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}

	return d.engine.Uint16(b), nil
}

// DecodeInt16 reads 2 little-endian bytes, reinterpreting two's complement.
func (d *Decoder) DecodeInt16() (int16, error) {
	v, err := d.DecodeUint16()
	return int16(v), err
}

// DecodeUint32 reads 4 little-endian bytes.
func (d *Decoder) DecodeUint32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}

	return d.engine.Uint32(b), nil
}

// DecodeInt32 reads 4 little-endian bytes, reinterpreting two's complement.
func (d *Decoder) DecodeInt32() (int32, error) {
	v, err := d.DecodeUint32()
	return int32(v), err
}

// DecodeUint64 reads 8 little-endian bytes.
func (d *Decoder) DecodeUint64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}

	return d.engine.Uint64(b), nil
}

// DecodeInt64 reads 8 little-endian bytes, reinterpreting two's complement.
func (d *Decoder) DecodeInt64() (int64, error) {
	v, err := d.DecodeUint64()
	return int64(v), err
}

// DecodeUint128 reads 16 little-endian bytes: Lo's bytes followed by Hi's.
func (d *Decoder) DecodeUint128() (Uint128, error) {
	b, err := d.take(16)
	if err != nil {
		return Uint128{}, err
	}

	return Uint128{
		Lo: d.engine.Uint64(b[:8]),
		Hi: d.engine.Uint64(b[8:]),
	}, nil
}

// DecodeInt128 reads 16 little-endian bytes in the same layout as
// DecodeUint128.
func (d *Decoder) DecodeInt128() (Int128, error) {
	v, err := d.DecodeUint128()
	if err != nil {
		return Int128{}, err
	}

	return Int128{Lo: v.Lo, Hi: int64(v.Hi)}, nil
}

// DecodeCompact reads a compact integer from the cursor, honoring the
// configured strict-minimal-compact policy.
func (d *Decoder) DecodeCompact() (compact.Value, error) {
	v, n, err := compact.Decode(d.data[d.pos:], d.cfg.StrictMinimalCompact())
	if err != nil {
		return compact.Value{}, err
	}

	d.pos += n

	return v, nil
}

// DecodeOptionBool reads the collapsed Option<Bool> encoding: nil for
// absent, a pointer to true/false for present. A byte greater than 2 fails
// with errs.ErrUnexpectedValue.
func (d *Decoder) DecodeOptionBool() (*bool, error) {
	b, err := d.NextByte()
	if err != nil {
		return nil, err
	}

	switch b {
	case 0:
		return nil, nil
	case 1:
		v := true
		return &v, nil
	case 2:
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: option<bool> byte 0x%02x", errs.ErrUnexpectedValue, b)
	}
}

// DecodeOption reads the one-byte discriminant and, when present, invokes
// decode to read the payload. It reports whether a value was present.
func (d *Decoder) DecodeOption(decode func(*Decoder) error) (bool, error) {
	b, err := d.NextByte()
	if err != nil {
		return false, err
	}

	switch b {
	case 0:
		return false, nil
	case 1:
		return true, decode(d)
	default:
		return false, fmt.Errorf("%w: option byte 0x%02x", errs.ErrUnexpectedValue, b)
	}
}

// DecodeSum reads a one-byte variant index and reports it. numVariants
// bounds the accepted index; an index at or beyond it fails with
// errs.ErrWrongTypeIndex.
func (d *Decoder) DecodeSum(numVariants int) (int, error) {
	b, err := d.NextByte()
	if err != nil {
		return 0, err
	}

	idx := int(b)
	if idx >= numVariants {
		return 0, fmt.Errorf("%w: index %d, variant count %d", errs.ErrWrongTypeIndex, idx, numVariants)
	}

	return idx, nil
}

// readLength reads a compact-encoded container length prefix and validates
// it against the remaining input before the caller allocates anything.
//
// minElemSize is the statically known minimum wire size of one element (0
// for zero-sized element shapes). A declared length whose elements could
// not possibly fit in the remaining bytes fails with errs.ErrTooManyItems,
// including the case where the compact length's own header claims more
// bytes than remain, which makes any length it could represent unrealizable
// against the input that's actually there.
func (d *Decoder) readLength(minElemSize int) (int, error) {
	if !d.HasMore(1) {
		return 0, errs.ErrNotEnoughData
	}

	headerLen := compact.HeaderLen(d.data[d.pos])
	if !d.HasMore(headerLen) {
		return 0, fmt.Errorf("%w: length prefix needs %d bytes, %d remain", errs.ErrTooManyItems, headerLen, d.Remaining())
	}

	v, err := d.DecodeCompact()
	if err != nil {
		return 0, err
	}

	n, fits := v.Uint64()
	if !fits || n > uint64(^uint(0)>>1) {
		return 0, fmt.Errorf("%w: declared length exceeds addressable range", errs.ErrTooManyItems)
	}

	count := int(n)

	if minElemSize == 0 {
		if count > d.cfg.MaxZeroSizedItems() {
			return 0, fmt.Errorf("%w: %d zero-sized items exceeds cap of %d", errs.ErrTooManyItems, count, d.cfg.MaxZeroSizedItems())
		}

		return count, nil
	}

	maxCount := d.Remaining() / minElemSize
	if count > maxCount {
		return 0, fmt.Errorf("%w: %d items of size %d exceeds %d remaining bytes", errs.ErrTooManyItems, count, minElemSize, d.Remaining())
	}

	return count, nil
}

// DecodeBitSequence reads a compact length prefix followed by that many
// single-byte booleans.
func (d *Decoder) DecodeBitSequence() ([]bool, error) {
	n, err := d.readLength(1)
	if err != nil {
		return nil, err
	}

	var out []bool
	for i := 0; i < n; i++ {
		b, err := d.DecodeBool()
		if err != nil {
			return nil, err
		}

		out = pool.GrowSlice(out, i+1)
		out[i] = b
	}

	return out, nil
}

// DecodeString reads a compact length prefix followed by that many raw
// bytes. The bytes are not validated as UTF-8.
func (d *Decoder) DecodeString() (string, error) {
	n, err := d.readLength(1)
	if err != nil {
		return "", err
	}

	b, err := d.take(n)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// DecodeProduct reads each field's encoding in order by delegating to their
// Decodable implementations.
func (d *Decoder) DecodeProduct(fields ...Decodable) error {
	for _, f := range fields {
		if err := f.DecodeFrom(d); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads a value by delegating to its Decodable implementation.
func (d *Decoder) Decode(v Decodable) error {
	return v.DecodeFrom(d)
}
