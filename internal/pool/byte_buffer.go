// Package pool provides pooled, reusable byte buffers for the reader
// package's fixed per-message scratch space, so repeatedly opening short-
// lived readers (as the CLI does, one per file) doesn't re-allocate the
// scratch on every open.
package pool

import "sync"

// Reader scratch sizes. StorageScratchSize covers a storage header plus
// the largest possible DLT message body (overall_length is a 16-bit
// field); DefaultBufferSize is the sync reader's default internal buffer
// capacity.
const (
	StorageScratchSize = 16 + 65535 // header.StorageHeaderLen + max uint16
	DefaultBufferSize  = 10 * 1024 * 1024
)

// ByteBuffer is a reusable, growable byte slice wrapper.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the buffer's current length.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// SetLength sets the buffer's length to n, growing its backing array first
// if n exceeds the current capacity.
func (bb *ByteBuffer) SetLength(n int) {
	bb.Grow(n - len(bb.B))
	bb.B = bb.B[:n]
}

// Grow ensures the buffer can hold at least requiredBytes more bytes
// without reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if requiredBytes <= 0 {
		return
	}

	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+requiredBytes)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// MustWrite appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ByteBufferPool pools ByteBuffers of a given default size.
type ByteBufferPool struct {
	pool sync.Pool
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize.
func NewByteBufferPool(defaultSize int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(StorageScratchSize)

// GetScratch retrieves a per-message scratch buffer from the shared pool,
// sized to at least n bytes. The reader package calls this once per reader
// open and PutScratch once per reader close, so the scratch backing array
// is reused across the short-lived readers the CLI opens one per file.
func GetScratch(n int) *ByteBuffer {
	bb := scratchPool.Get()
	bb.SetLength(n)
	return bb
}

// PutScratch returns a scratch buffer to the shared pool.
func PutScratch(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
