// Package endian provides byte-order utilities for the codec's fixed-width
// integer reads and writes.
//
// EndianEngine unifies encoding/binary's ByteOrder and AppendByteOrder
// interfaces so a single value covers both cursor-style reads and
// append-style writes. The wire format is always little-endian, so
// codec.Encoder and codec.Decoder each hold an engine from
// GetLittleEndianEngine and route every fixed-width integer through it;
// the byte order is decided at one construction site rather than at each
// call. The big-endian engine exists so tests can prove the host's native
// order never leaks onto the wire.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines read (ByteOrder) and append (AppendByteOrder)
// operations for one byte order. binary.LittleEndian and binary.BigEndian
// both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order by inspecting how a
// known 16-bit value lands in memory.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	// The byte at the lowest address is the MSB on a big-endian host.
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetLittleEndianEngine returns the engine for SCALE's wire order.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
