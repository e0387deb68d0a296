package codec

// Uint128 is an unsigned 128-bit integer held as two 64-bit halves. Lo
// carries bits 0-63, Hi carries bits 64-127; the wire encoding writes Lo's
// little-endian bytes followed by Hi's, which is exactly a 16-byte
// little-endian encoding of the combined value.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is a signed 128-bit integer in the same two's-complement bit layout
// as Uint128. Hi is typed as int64 only so callers can read the sign; the
// wire bytes are identical to Uint128{Lo: v.Lo, Hi: uint64(v.Hi)}.
type Int128 struct {
	Lo uint64
	Hi int64
}
