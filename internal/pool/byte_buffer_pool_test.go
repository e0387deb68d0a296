package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWriteAccumulates(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.MustWrite([]byte{0x01, 0x02})
	bb.MustWrite([]byte{0x03})

	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{0x01, 0x02, 0x03}, bb.Bytes())
}

func TestByteBuffer_ResetKeepsCapacity(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite(make([]byte, 100))

	capBefore := bb.Cap()
	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_GrowNoOpWithCapacity(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte{0xaa})

	capBefore := bb.Cap()
	bb.Grow(32)

	require.Equal(t, capBefore, bb.Cap())
	require.Equal(t, []byte{0xaa}, bb.Bytes())
}

func TestByteBuffer_GrowSmallBufferAddsDefaultChunk(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(8)

	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 8)
	require.Equal(t, 4+BufferDefaultSize, bb.Cap())
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes(), "growth must preserve contents")
}

func TestByteBuffer_GrowLargeBufferBy25Percent(t *testing.T) {
	start := 8 * BufferDefaultSize
	bb := NewByteBuffer(start)
	bb.B = bb.B[:start]

	bb.Grow(1)

	require.Equal(t, start+start/4, bb.Cap())
}

func TestByteBuffer_GrowAtLeastRequested(t *testing.T) {
	bb := NewByteBuffer(0)

	huge := 3 * BufferDefaultSize
	bb.Grow(huge)

	require.GreaterOrEqual(t, bb.Cap(), huge)
}

func TestByteBufferPool_GetReturnsEmptyBuffer(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len(), "pooled buffers must come back reset")
}

func TestByteBufferPool_PutNilIsSafe(t *testing.T) {
	p := NewByteBufferPool(32, 64)
	require.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.MustWrite(make([]byte, 1024))
	require.Greater(t, bb.Cap(), 64)

	// Must not panic; the buffer is silently dropped rather than pooled.
	p.Put(bb)

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 64, "oversized buffer must not re-enter the pool")
	require.Equal(t, 0, got.Len())
}

func TestDefaultPool_RoundTrip(t *testing.T) {
	bb := GetBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{0xff})
	PutBuffer(bb)
}
