// Package compact implements the SCALE compact integer encoding: a
// variable-length unsigned integer scheme selected by the low two bits of
// its first byte, covering values from 0 to 2^536-1 across four modes.
//
// Mode is chosen by the encoder to minimize byte count; the decoder accepts
// any well-formed encoding by default and optionally rejects non-minimal
// ones (see Decode's strict parameter).
package compact

import (
	"encoding/binary"

	"github.com/go-scale/scale/errs"
	"github.com/go-scale/scale/internal/pool"
)

// MaxBigBytes is the largest number of little-endian value bytes mode 3 can
// carry: a 6-bit length nibble (0-63) plus the format's fixed offset of 4,
// i.e. values up to 2^(8*67)-1 = 2^536-1.
const MaxBigBytes = 67

const (
	mode0Max = 1 << 6  // values below this fit in mode 0 (1 byte)
	mode1Max = 1 << 14 // values below this fit in mode 1 (2 bytes)
	mode2Max = 1 << 30 // values below this fit in mode 2 (4 bytes)
)

// Value is a decoded compact integer. Values up to math.MaxUint64 are held
// directly in Small with Big left nil; larger values (up to 2^536-1) are
// held as trimmed little-endian bytes in Big, with Small left zero.
type Value struct {
	Small uint64
	Big   []byte // little-endian, minimal width, nil when the value fits in Small
}

// Uint64 returns v as a uint64 and reports whether it fit (Big == nil).
func (v Value) Uint64() (uint64, bool) {
	return v.Small, v.Big == nil
}

// Bytes returns v's value as little-endian bytes with no leading (high-order)
// zero byte, except for the value zero, which is returned as a single zero
// byte.
func (v Value) Bytes() []byte {
	if v.Big != nil {
		return v.Big
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.Small)

	n := 8
	for n > 1 && buf[n-1] == 0 {
		n--
	}

	return buf[:n]
}

// EncodeUint64 appends the canonical (minimal-mode) compact encoding of n to
// buf.
func EncodeUint64(buf *pool.ByteBuffer, n uint64) {
	switch {
	case n < mode0Max:
		buf.Grow(1)
		buf.MustWrite([]byte{byte(n << 2)})
	case n < mode1Max:
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], uint16(n<<2)|0b01)
		buf.Grow(2)
		buf.MustWrite(tmp[:])
	case n < mode2Max:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(n<<2)|0b10)
		buf.Grow(4)
		buf.MustWrite(tmp[:])
	default:
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], n)
		l := 8
		for l > 4 && tmp[l-1] == 0 {
			l--
		}
		writeMode3(buf, tmp[:l])
	}
}

// EncodeBig appends the canonical compact encoding of an arbitrary-precision
// unsigned value given as little-endian bytes (leBytes[0] is the least
// significant byte). It picks the smallest mode that fits, including modes
// 0-2 when the trimmed value turns out to be small, and fails with
// errs.ErrValueOutOfRange when the value needs more than MaxBigBytes bytes.
func EncodeBig(buf *pool.ByteBuffer, leBytes []byte) error {
	n := len(leBytes)
	for n > 0 && leBytes[n-1] == 0 {
		n--
	}
	trimmed := leBytes[:n]

	if len(trimmed) <= 8 {
		var tmp [8]byte
		copy(tmp[:], trimmed)
		EncodeUint64(buf, binary.LittleEndian.Uint64(tmp[:]))

		return nil
	}

	if len(trimmed) > MaxBigBytes {
		return errs.ErrValueOutOfRange
	}

	writeMode3(buf, trimmed)

	return nil
}

// writeMode3 writes the mode-3 header followed by the given minimal-width
// little-endian value bytes (4 <= len(valueBytes) <= MaxBigBytes).
func writeMode3(buf *pool.ByteBuffer, valueBytes []byte) {
	l := len(valueBytes)
	m := l - 4

	buf.Grow(1 + l)
	buf.MustWrite([]byte{byte(m<<2) | 0b11})
	buf.MustWrite(valueBytes)
}

// Decode reads a compact integer from the front of data.
//
// It returns the decoded value, the number of bytes consumed, and an error.
// When strict is true, non-minimal encodings (a mode larger than the value
// required, or mode-3 padding with a zero-valued top byte) fail with
// errs.ErrValueOutOfRange instead of being accepted.
func Decode(data []byte, strict bool) (Value, int, error) {
	if len(data) < 1 {
		return Value{}, 0, errs.ErrNotEnoughData
	}

	switch data[0] & 0b11 {
	case 0b00:
		return Value{Small: uint64(data[0] >> 2)}, 1, nil

	case 0b01:
		if len(data) < 2 {
			return Value{}, 0, errs.ErrNotEnoughData
		}
		n := uint64(binary.LittleEndian.Uint16(data[:2]) >> 2)
		if strict && n < mode0Max {
			return Value{}, 0, errs.ErrValueOutOfRange
		}

		return Value{Small: n}, 2, nil

	case 0b10:
		if len(data) < 4 {
			return Value{}, 0, errs.ErrNotEnoughData
		}
		n := uint64(binary.LittleEndian.Uint32(data[:4]) >> 2)
		if strict && n < mode1Max {
			return Value{}, 0, errs.ErrValueOutOfRange
		}

		return Value{Small: n}, 4, nil

	default: // mode 3, big integer
		m := int(data[0] >> 2)
		l := m + 4
		if len(data) < 1+l {
			return Value{}, 0, errs.ErrNotEnoughData
		}

		payload := data[1 : 1+l]
		if strict && payload[l-1] == 0 {
			return Value{}, 0, errs.ErrValueOutOfRange
		}

		trimmed := l
		for trimmed > 0 && payload[trimmed-1] == 0 {
			trimmed--
		}

		if trimmed <= 8 {
			var tmp [8]byte
			copy(tmp[:], payload[:trimmed])
			n := binary.LittleEndian.Uint64(tmp[:])
			if strict && n < mode2Max {
				return Value{}, 0, errs.ErrValueOutOfRange
			}

			return Value{Small: n}, 1 + l, nil
		}

		big := make([]byte, trimmed)
		copy(big, payload[:trimmed])

		return Value{Big: big}, 1 + l, nil
	}
}

// HeaderLen inspects the first byte of data (which must be present) and
// returns the total number of bytes the compact integer starting there will
// occupy, without validating or decoding the value. It is used by callers
// that need to bound-check a length prefix before committing to a full
// Decode call.
func HeaderLen(firstByte byte) int {
	switch firstByte & 0b11 {
	case 0b00:
		return 1
	case 0b01:
		return 2
	case 0b10:
		return 4
	default:
		return 1 + int(firstByte>>2) + 4
	}
}
