// Package hash derives stable 64-bit identifiers from shape names. The
// digest is xxHash64, chosen for speed on the short strings the registry
// hashes; the resulting IDs are lookup keys, not cryptographic material.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 digest of name. Equal names always produce equal
// IDs, across processes and architectures.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
