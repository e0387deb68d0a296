package codec

import "github.com/go-scale/scale/internal/pool"

// EncodeArray writes each of items's encodings in order with no length
// prefix; the element count is a schema-time property the caller already
// knows, not wire data.
func EncodeArray[T any](e *Encoder, items []T, encodeElem func(*Encoder, T) error) error {
	for _, item := range items {
		if err := encodeElem(e, item); err != nil {
			return err
		}
	}

	return nil
}

// DecodeArray reads exactly n elements with no length prefix.
func DecodeArray[T any](d *Decoder, n int, decodeElem func(*Decoder) (T, error)) ([]T, error) {
	var out []T
	for i := 0; i < n; i++ {
		v, err := decodeElem(d)
		if err != nil {
			return nil, err
		}

		out = pool.GrowSlice(out, i+1)
		out[i] = v
	}

	return out, nil
}

// EncodeSlice writes a compact length prefix followed by items's encodings
// in order.
func EncodeSlice[T any](e *Encoder, items []T, encodeElem func(*Encoder, T) error) error {
	e.EncodeCompact(uint64(len(items)))

	return EncodeArray(e, items, encodeElem)
}

// DecodeSlice reads a compact length prefix, validates it against the
// remaining input using minElemSize (the statically known minimum wire size
// of one T; 0 for zero-sized elements), then reads that many elements,
// growing its backing array geometrically as elements arrive rather than
// preallocating the declared count.
func DecodeSlice[T any](d *Decoder, minElemSize int, decodeElem func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.readLength(minElemSize)
	if err != nil {
		return nil, err
	}

	return DecodeArray(d, n, decodeElem)
}

// MapEntry is one (key, value) pair of a map encoding. EncodeMap takes a
// slice of entries rather than a Go map because the wire order of a map's
// pairs is producer-chosen: a Go map has no stable iteration order to
// choose with, so encoding one directly would emit different bytes on
// repeated encodes of the same value.
type MapEntry[K comparable, V any] struct {
	Key K
	Val V
}

// EncodeMap writes a compact length prefix followed by each entry's (key,
// value) encodings, in slice order. Encoding the same entries slice twice
// produces identical bytes. Duplicate keys are written as given; a decoder
// folds them last-wins.
func EncodeMap[K comparable, V any](e *Encoder, entries []MapEntry[K, V], encodeKey func(*Encoder, K) error, encodeVal func(*Encoder, V) error) error {
	e.EncodeCompact(uint64(len(entries)))

	for _, entry := range entries {
		if err := encodeKey(e, entry.Key); err != nil {
			return err
		}

		if err := encodeVal(e, entry.Val); err != nil {
			return err
		}
	}

	return nil
}

// DecodeMap reads a compact length prefix followed by that many (key,
// value) products, folding them into a map where a duplicate key's last
// occurrence on the wire wins. minElemSize is the statically known minimum
// combined wire size of one (K, V) pair.
func DecodeMap[K comparable, V any](d *Decoder, minElemSize int, decodeKey func(*Decoder) (K, error), decodeVal func(*Decoder) (V, error)) (map[K]V, error) {
	n, err := d.readLength(minElemSize)
	if err != nil {
		return nil, err
	}

	out := make(map[K]V, min(n, 1024))
	for i := 0; i < n; i++ {
		k, err := decodeKey(d)
		if err != nil {
			return nil, err
		}

		v, err := decodeVal(d)
		if err != nil {
			return nil, err
		}

		out[k] = v
	}

	return out, nil
}
