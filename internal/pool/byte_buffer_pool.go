// Package pool provides the allocation machinery behind the codec: pooled
// byte buffers for the encoder's append-only output, and a slice grower
// that bounds the decoder's allocations against adversarial length
// prefixes.
package pool

import "sync"

const (
	// BufferDefaultSize is the capacity of a fresh pooled buffer, sized so
	// a typical encoded value never reallocates.
	BufferDefaultSize = 16 * 1024

	// BufferMaxThreshold is the capacity above which a returned buffer is
	// discarded instead of pooled, so one oversized encode does not pin its
	// memory for the life of the pool.
	BufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a growable byte slice the encoder appends into. B is
// exported so append-style writers (endian.EndianEngine's Append methods)
// can extend it in place.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the accumulated bytes. The slice aliases the buffer's
// backing array.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of accumulated bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer while keeping its backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data, growing the backing array if needed. It cannot
// fail; the name distinguishes it from an io.Writer's fallible Write.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures at least n more bytes fit without reallocating. Small
// buffers grow by BufferDefaultSize to amortize the next few writes; once
// capacity passes 4x that, growth switches to 25% of capacity to keep the
// overshoot proportional.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := BufferDefaultSize
	if cap(bb.B) > 4*BufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool recycles ByteBuffers across encoder lifetimes. Buffers
// larger than maxThreshold are dropped on Put rather than retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers have defaultSize
// capacity. A maxThreshold of 0 disables the discard check.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool, discarding it instead when its
// capacity exceeds the pool's threshold.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(BufferDefaultSize, BufferMaxThreshold)

// GetBuffer retrieves a ByteBuffer from the package-level pool.
func GetBuffer() *ByteBuffer {
	return defaultPool.Get()
}

// PutBuffer returns a ByteBuffer to the package-level pool.
func PutBuffer(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
