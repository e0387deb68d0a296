// Package registry maps a type name to a constructor for a codec.Decodable,
// keyed by an xxhash digest of the name rather than the name string itself.
// It backs dynamic shape dispatch: a sum type whose variant set is
// discovered at runtime (plugins, schema-driven configs) rather than fixed
// at compile time can encode a variant's name and let the decoder look up
// the matching constructor by hash instead of a linear string comparison.
package registry

import (
	"fmt"
	"sync"

	"github.com/go-scale/scale/codec"
	"github.com/go-scale/scale/internal/hash"
)

// Constructor returns a fresh, zero-valued Decodable ready to have
// DecodeFrom called on it.
type Constructor func() codec.Decodable

// Registry is a concurrency-safe name-to-constructor lookup table.
type Registry struct {
	mu   sync.RWMutex
	ctor map[uint64]Constructor
	name map[uint64]string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		ctor: make(map[uint64]Constructor),
		name: make(map[uint64]string),
	}
}

// Key returns the hash used to look up name. Callers that encode a dynamic
// shape selector write this value (or derive their own encoding from it)
// rather than the name string itself.
func Key(name string) uint64 {
	return hash.ID(name)
}

// Register associates name with a constructor. It panics if name's hash
// collides with a different, already-registered name; the registry is
// meant to be populated once at startup from a fixed set of known shapes,
// so a collision there indicates a programming error, not runtime input.
func (r *Registry) Register(name string, ctor Constructor) {
	key := Key(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.name[key]; ok && existing != name {
		panic(fmt.Sprintf("registry: hash collision between %q and %q", existing, name))
	}

	r.ctor[key] = ctor
	r.name[key] = name
}

// New looks up the constructor registered for name's hash and invokes it. It
// reports false when no constructor is registered for that hash.
func (r *Registry) New(name string) (codec.Decodable, bool) {
	return r.NewByKey(Key(name))
}

// NewByKey looks up the constructor registered for key and invokes it. It
// reports false when no constructor is registered for that key.
func (r *Registry) NewByKey(key uint64) (codec.Decodable, bool) {
	r.mu.RLock()
	ctor, ok := r.ctor[key]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return ctor(), true
}
