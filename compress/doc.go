// Package compress wraps already-SCALE-encoded bytes with an optional
// compression layer for storage or transport.
//
// Compression sits strictly outside the wire format: it never touches a
// SCALE primitive directly, only the opaque byte string an Encoder has
// already finished. EncodeCompressed and DecodeCompressed are the intended
// entry points: they marshal/unmarshal a codec.Encodable/Decodable through
// the scale package, so the envelope is never applied to an arbitrary,
// non-SCALE byte slice indistinguishable from any other payload. The
// lower-level Compressor/Decompressor/Codec interfaces stay exported for
// callers that already hold raw bytes to compress directly.
//
// Four algorithms are available via CompressionType: None (passthrough),
// Zstd (best ratio, archival/network use), S2 (balanced speed and ratio),
// and LZ4 (fastest decompression, read-heavy use).
package compress
