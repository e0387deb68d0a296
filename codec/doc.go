// Package codec implements the SCALE encoder/decoder engine: Encoder and
// Decoder, one method per structural shape, plus the Encodable/Decodable
// capability pair through which user-defined products and sums plug in.
//
// # Shapes
//
// Every value the codec handles is one of: bool, a fixed-width integer (8,
// 16, 32, 64, or 128 bits, signed or unsigned), a compact integer (see the
// compact subpackage), Option<T> (with a collapsed one-byte form for
// Option<bool>), a sum of up to 256 variants, a product (ordered tuple of
// fields), a fixed-length array, or a compact-length-prefixed sequence, map,
// bit-sequence, or string. Every fixed-width integer is read and written
// through an endian.EndianEngine bound to little-endian order, so the byte
// order is decided in one place rather than at each call site.
//
// # Bounded decoding
//
// A length prefix read from the wire is adversarial input, not a trusted
// element count. DecodeSlice and DecodeMap validate a declared length
// against the bytes actually remaining before reading a single element
// (see Decoder.readLength). DecodeSlice then builds its result by growing a
// slice geometrically as elements arrive (internal/pool.GrowSlice) rather
// than preallocating to the declared count; DecodeMap presizes its map to at
// most 1024 entries. A length that cannot possibly be satisfied by the
// remaining input (including one whose own compact-integer header claims
// more bytes than remain) fails immediately with errs.ErrTooManyItems.
//
// # Configuration
//
// Config (built via NewConfig and the With* options) controls three
// policies: whether non-minimal compact integers are rejected, the cap on
// declared element counts for zero-sized-element sequences, and whether a
// top-level decode must consume its entire input.
package codec
