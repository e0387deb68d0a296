package scale

import (
	"testing"

	"github.com/go-scale/scale/codec"
	"github.com/go-scale/scale/errs"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A uint8
	B uint8
}

func (p *pair) EncodeTo(e *codec.Encoder) error {
	e.EncodeUint8(p.A)
	e.EncodeUint8(p.B)

	return nil
}

func (p *pair) DecodeFrom(d *codec.Decoder) error {
	a, err := d.DecodeUint8()
	if err != nil {
		return err
	}

	b, err := d.DecodeUint8()
	if err != nil {
		return err
	}

	p.A, p.B = a, b

	return nil
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	p := &pair{A: 1, B: 2}

	data, err := Marshal(p)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, data)

	var got pair
	require.NoError(t, Unmarshal(data, &got))
	require.Equal(t, *p, got)
}

func TestUnmarshal_FullConsumptionRejectsTrailingBytes(t *testing.T) {
	var got pair
	err := Unmarshal([]byte{1, 2, 3}, &got, codec.WithFullConsumption())
	require.ErrorIs(t, err, errs.ErrExtraData)
}

func TestUnmarshal_PermissiveByDefault(t *testing.T) {
	var got pair
	err := Unmarshal([]byte{1, 2, 3}, &got)
	require.NoError(t, err)
	require.Equal(t, pair{A: 1, B: 2}, got)
}

func TestNewEncoderNewDecoder(t *testing.T) {
	e := NewEncoder()
	e.EncodeBool(true)
	data := e.Finish()

	d := NewDecoder(data)
	v, err := d.DecodeBool()
	require.NoError(t, err)
	require.True(t, v)
}
