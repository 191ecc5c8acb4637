// Package alloc provides fail-fast allocation and overflow-safe buffer
// growth.
//
// # Overview
//
// The package layers three pieces:
//
//   - Allocator: the raw allocation interface. Implementations hand out
//     byte blocks and may report exhaustion by returning nil.
//   - Guard: wraps an Allocator with checked sizing and a fail-fast
//     policy. A request the guard cannot size, or that the allocator
//     cannot satisfy, prints one diagnostic and terminates the process.
//   - Grow: the geometric growth policy. Given a buffer's current
//     capacity and a growth request it computes the next capacity,
//     clamps it to an optional bound, and reallocates through the guard.
//
// # Failure taxonomy
//
// Overflow detected by the checked package is recoverable for direct
// callers of that package, but the guard treats any request it cannot
// size as fatal: call sites never issue such requests deliberately, so an
// overflowing allocation request is a programming error rather than a
// runtime condition. Exhaustion (a nil block for a non-zero request) is
// always fatal. Hitting a caller-supplied capacity bound is neither: Grow
// returns ErrBoundReached and performs no allocation.
//
// # Usage
//
//	g := alloc.NewGuard(nil, diag.New("mytool"))
//
//	buf := g.Alloc(16, 8) // 16 elements of 8 bytes
//
//	cap := alloc.Capacity{Elems: 16, ElemSize: 8}
//	buf, cap, err := g.Grow(buf, cap, alloc.GrowthRequest{
//		MinIncrement: 1,
//		MaxElems:     alloc.Unbounded,
//	})
//	if errors.Is(err, alloc.ErrBoundReached) {
//		// no legal growth exists
//	}
//
// # Thread safety
//
// Guards hold no per-buffer state and buffers are exclusively owned by
// one call site at a time. The package performs no locking; concurrent
// use of one buffer's block/capacity pair must be serialized by the
// caller.
package alloc
