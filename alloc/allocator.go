package alloc

// Allocator is the raw allocation interface the Guard builds on.
//
// Implementations:
//   - HeapAllocator: Go-heap blocks via make, never exhausted
//   - arena.Allocator: single-region file-backed blocks that can fail
//     when the OS refuses to extend the backing file
type Allocator interface {
	// Allocate returns a block of at least size bytes, or nil when the
	// allocator cannot supply the memory. size is never negative.
	Allocate(size int) []byte

	// Reallocate returns a block of at least size bytes carrying the
	// contents of b up to min(len(b), size). Ownership of b passes to
	// the allocator; on failure (nil return) b's fate is
	// allocator-defined and callers must not rely on it surviving.
	Reallocate(size int, b []byte) []byte

	// Free releases b. Implementations may treat it as a no-op.
	Free(b []byte)
}

// HeapAllocator allocates from the Go heap. Allocate and Reallocate never
// return nil for a non-zero size; the runtime itself aborts on heap
// exhaustion.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) []byte {
	return make([]byte, size)
}

func (HeapAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	if size < len(b) {
		return b[:size:size]
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

func (HeapAllocator) Free(b []byte) {}

var _ Allocator = HeapAllocator{}
