package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// point is a simple product type used to exercise Encodable/Decodable
// dispatch end-to-end.
type point struct {
	X uint32
	Y uint32
}

func (p *point) EncodeTo(e *Encoder) error {
	e.EncodeUint32(p.X)
	e.EncodeUint32(p.Y)

	return nil
}

func (p *point) DecodeFrom(d *Decoder) error {
	x, err := d.DecodeUint32()
	if err != nil {
		return err
	}

	y, err := d.DecodeUint32()
	if err != nil {
		return err
	}

	p.X, p.Y = x, y

	return nil
}

// shapeOrColor is a sum type over (point, string) used to exercise sum-type
// dispatch.
type shapeOrColor struct {
	isColor bool
	point   point
	color   string
}

func (s *shapeOrColor) EncodeTo(e *Encoder) error {
	if s.isColor {
		return e.EncodeSum(1, 2, func(e *Encoder) error {
			e.EncodeString(s.color)
			return nil
		})
	}

	return e.EncodeSum(0, 2, func(e *Encoder) error {
		return s.point.EncodeTo(e)
	})
}

func (s *shapeOrColor) DecodeFrom(d *Decoder) error {
	idx, err := d.DecodeSum(2)
	if err != nil {
		return err
	}

	switch idx {
	case 0:
		s.isColor = false
		return s.point.DecodeFrom(d)
	case 1:
		s.isColor = true
		c, err := d.DecodeString()
		s.color = c

		return err
	}

	return nil
}

func TestRoundTrip_Product(t *testing.T) {
	p := &point{X: 10, Y: 20}

	b, err := encodeValue(t, p)
	require.NoError(t, err)

	var got point
	require.NoError(t, decodeValue(t, b, &got))
	require.Equal(t, *p, got)
}

func TestRoundTrip_Sum(t *testing.T) {
	for _, v := range []*shapeOrColor{
		{isColor: false, point: point{X: 1, Y: 2}},
		{isColor: true, color: "red"},
	} {
		b, err := encodeValue(t, v)
		require.NoError(t, err)

		var got shapeOrColor
		require.NoError(t, decodeValue(t, b, &got))
		require.Equal(t, *v, got)
	}
}

func TestRoundTrip_FixedArray(t *testing.T) {
	e := NewEncoder()
	items := [3]uint16{10, 20, 30}
	err := EncodeArray(e, items[:], func(e *Encoder, v uint16) error {
		e.EncodeUint16(v)
		return nil
	})
	require.NoError(t, err)

	d := NewDecoder(e.Finish())
	got, err := DecodeArray(d, 3, func(d *Decoder) (uint16, error) {
		return d.DecodeUint16()
	})
	require.NoError(t, err)
	require.Equal(t, []uint16{10, 20, 30}, got)
	require.Equal(t, 0, d.Remaining())
}

func TestRoundTrip_Map(t *testing.T) {
	entries := []MapEntry[string, uint32]{
		{Key: "a", Val: 1},
		{Key: "b", Val: 2},
		{Key: "c", Val: 3},
	}

	encode := func() []byte {
		e := NewEncoder()
		err := EncodeMap(e, entries, func(e *Encoder, k string) error {
			e.EncodeString(k)
			return nil
		}, func(e *Encoder, v uint32) error {
			e.EncodeUint32(v)
			return nil
		})
		require.NoError(t, err)

		return e.Finish()
	}

	first := encode()
	require.Equal(t, first, encode(), "entry order is caller-fixed, so repeated encodes are byte-identical")

	d := NewDecoder(first)
	got, err := DecodeMap(d, 5, func(d *Decoder) (string, error) {
		return d.DecodeString()
	}, func(d *Decoder) (uint32, error) {
		return d.DecodeUint32()
	})
	require.NoError(t, err)
	require.Equal(t, map[string]uint32{"a": 1, "b": 2, "c": 3}, got)
	require.Equal(t, 0, d.Remaining())
}

func TestRoundTrip_Determinism(t *testing.T) {
	p := &point{X: 42, Y: 99}

	a, err := encodeValue(t, p)
	require.NoError(t, err)
	b, err := encodeValue(t, p)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func encodeValue(t *testing.T, v Encodable) ([]byte, error) {
	t.Helper()
	e := NewEncoder()
	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return e.Finish(), nil
}

func decodeValue(t *testing.T, data []byte, v Decodable) error {
	t.Helper()
	d := NewDecoder(data)

	return d.Decode(v)
}
