package registry

import (
	"testing"

	"github.com/go-scale/scale/codec"
	"github.com/stretchr/testify/require"
)

type stub struct {
	n uint8
}

func (s *stub) EncodeTo(e *codec.Encoder) error {
	e.EncodeUint8(s.n)
	return nil
}

func (s *stub) DecodeFrom(d *codec.Decoder) error {
	n, err := d.DecodeUint8()
	s.n = n

	return err
}

func TestRegistry_RegisterAndNew(t *testing.T) {
	r := New()
	r.Register("stub", func() codec.Decodable { return &stub{} })

	v, ok := r.New("stub")
	require.True(t, ok)
	require.IsType(t, &stub{}, v)
}

func TestRegistry_UnknownNameMisses(t *testing.T) {
	r := New()
	_, ok := r.New("nope")
	require.False(t, ok)
}

func TestRegistry_NewByKey(t *testing.T) {
	r := New()
	r.Register("stub", func() codec.Decodable { return &stub{} })

	v, ok := r.NewByKey(Key("stub"))
	require.True(t, ok)
	require.IsType(t, &stub{}, v)
}

func TestRegistry_DecodeThroughRegistry(t *testing.T) {
	r := New()
	r.Register("stub", func() codec.Decodable { return &stub{} })

	e := codec.NewEncoder()
	e.EncodeUint8(42)
	data := e.Finish()

	v, ok := r.New("stub")
	require.True(t, ok)

	d := codec.NewDecoder(data)
	require.NoError(t, d.Decode(v))
	require.Equal(t, uint8(42), v.(*stub).n)
}

func TestRegistry_SameNameReregisterIsNotACollision(t *testing.T) {
	r := New()
	require.NotPanics(t, func() {
		r.Register("stub", func() codec.Decodable { return &stub{} })
		r.Register("stub", func() codec.Decodable { return &stub{n: 1} })
	})
}
