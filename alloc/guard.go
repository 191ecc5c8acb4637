package alloc

import (
	"github.com/joshuapare/memkit/checked"
	"github.com/joshuapare/memkit/diag"
)

// exhaustedStatus is the process exit status used by the default abort.
const exhaustedStatus = 2

// Guard wraps an Allocator with checked sizing and a fail-fast policy.
//
// Every operation first sizes the request through the checked package. A
// request that cannot be sized, or that the allocator cannot satisfy, is
// fatal: the guard reports one diagnostic and invokes its termination
// primitive. Guard operations never return a failure indicator.
type Guard struct {
	a     Allocator
	diag  *diag.Reporter
	abort func()
}

// Option configures a Guard.
type Option func(*Guard)

// WithAbort replaces the termination primitive invoked on the fatal path.
// The replacement must not return; the guard panics if it does.
func WithAbort(abort func()) Option {
	return func(g *Guard) { g.abort = abort }
}

// NewGuard returns a Guard over a. A nil a means the Go heap. A nil r
// reports as "memkit" on os.Stderr. The default termination primitive
// exits the process with status 2 after the diagnostic.
func NewGuard(a Allocator, r *diag.Reporter, opts ...Option) *Guard {
	if a == nil {
		a = HeapAllocator{}
	}
	if r == nil {
		r = diag.New("memkit")
	}
	g := &Guard{a: a, diag: r}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Alloc returns a block of count elements of elemSize bytes. A zero count
// or element size may yield a nil or empty block without terminating.
func (g *Guard) Alloc(count, elemSize int) []byte {
	size, ok := checked.Bytes(count, elemSize)
	if !ok {
		g.die()
	}
	b := g.a.Allocate(size)
	if b == nil && size != 0 {
		g.die()
	}
	return b
}

// Zalloc is Alloc with the returned block guaranteed to read as zero
// bytes, even when the allocator recycles memory.
func (g *Guard) Zalloc(count, elemSize int) []byte {
	b := g.Alloc(count, elemSize)
	clear(b)
	return b
}

// Realloc resizes b to count elements of elemSize bytes, preserving
// contents up to the smaller of the old and new sizes. Ownership of b
// passes to the underlying allocator.
func (g *Guard) Realloc(b []byte, count, elemSize int) []byte {
	size, ok := checked.Bytes(count, elemSize)
	if !ok {
		g.die()
	}
	nb := g.a.Reallocate(size, b)
	if nb == nil && size != 0 {
		g.die()
	}
	return nb
}

// Dup returns a freshly allocated copy of src.
func (g *Guard) Dup(src []byte) []byte {
	b := g.Alloc(len(src), 1)
	copy(b, src)
	return b
}

// DupString returns a freshly allocated copy of s as bytes. Go strings
// carry their length, so no terminator is appended.
func (g *Guard) DupString(s string) []byte {
	b := g.Alloc(len(s), 1)
	copy(b, s)
	return b
}

// Free releases b to the underlying allocator.
func (g *Guard) Free(b []byte) {
	g.a.Free(b)
}

// die reports exhaustion and terminates. It never returns.
func (g *Guard) die() {
	if g.abort != nil {
		g.abort()
		panic("alloc: abort returned")
	}
	g.diag.Report(exhaustedStatus, nil, "memory exhausted")
	panic("alloc: diagnostic exit returned")
}
