package codec

// Encodable is implemented by a user-defined aggregate (a product or sum
// type) that knows how to append itself to an Encoder. The SCALE wire
// format carries no type information beyond a sum's variant index, so
// EncodeTo is solely responsible for writing its fields in declaration
// order.
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Decodable is implemented by a user-defined aggregate that knows how to
// populate itself by reading from a Decoder. A partially populated receiver
// after a failed DecodeFrom must be treated as indeterminate by the caller.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}
