// Package pool provides reusable byte buffers for the scratch allocation
// the decoder needs on its hot path: the byte-swap copy in endian.Reinterpret
// on big-endian hosts. Decoded outputs are never pool-backed.
package pool

import "sync"

// Default and max sizes for buffers obtained from the pool. Buffers beyond
// the max threshold are not returned to the pool, to avoid pinning a large
// allocation for the lifetime of the process after a single oversized decode.
const (
	DefaultSize   = 4 * 1024   // 4KiB
	MaxThreshold  = 256 * 1024 // 256KiB
)

// ByteBuffer is a growable, reusable byte slice wrapper.
type ByteBuffer struct {
	B []byte
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DefaultSize)}
	},
}

// Get returns a ByteBuffer from the pool, reset to zero length.
func Get() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	bb.B = bb.B[:0]

	return bb
}

// Put returns bb to the pool. Buffers whose capacity exceeds MaxThreshold
// are dropped instead of pooled, so one oversized decode doesn't keep a
// large buffer resident forever.
func Put(bb *ByteBuffer) {
	if cap(bb.B) > MaxThreshold {
		return
	}
	bufferPool.Put(bb)
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can hold n more bytes without reallocating,
// using an amortized growth strategy: double under 64KiB, grow by 25%
// above it.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	needed := len(bb.B) + n
	newCap := cap(bb.B)
	if newCap == 0 {
		newCap = DefaultSize
	}
	for newCap < needed {
		if newCap < 64*1024 {
			newCap *= 2
		} else {
			newCap += newCap / 4
		}
	}

	grown := make([]byte, len(bb.B), newCap)
	copy(grown, bb.B)
	bb.B = grown
}

// Extend grows the buffer by n bytes (amortized) and returns the extended
// slice, ready to be written into in place.
func (bb *ByteBuffer) Extend(n int) []byte {
	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start : start+n]
}
