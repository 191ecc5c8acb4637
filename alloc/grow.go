package alloc

import "github.com/joshuapare/memkit/checked"

// Unbounded marks a GrowthRequest with no element-count ceiling.
const Unbounded = -1

// Capacity pairs a buffer's element count with its fixed element size in
// bytes. Capacities are transient values recomputed on every growth call;
// the caller stores the current one alongside its block and passes it
// back on the next request.
type Capacity struct {
	Elems    int
	ElemSize int
}

// Bytes returns the capacity's total byte size and whether it fits in an
// int.
func (c Capacity) Bytes() (int, bool) {
	return checked.Bytes(c.Elems, c.ElemSize)
}

// GrowthRequest describes how a buffer should grow.
type GrowthRequest struct {
	// MinIncrement is the least number of elements the buffer must grow
	// by. The effective increment is never below the current element
	// count, so default growth doubles.
	MinIncrement int

	// MaxElems caps the grown element count, or Unbounded for no cap.
	// When bounded it must be >= the current element count or no growth
	// is possible.
	MaxElems int
}

// Grow computes the next capacity for block and reallocates it through
// the guard.
//
// The increment is the larger of the current element count and
// req.MinIncrement, so repeated single-element appends double the buffer
// and need only O(log k) reallocations across k appends. Growing from an
// empty buffer uses an increment of at least 1. When req.MaxElems is
// bounded the increment is clamped to it; a buffer already at or past the
// bound gets ErrBoundReached and no allocation is performed.
//
// Overflow of the clamped element count or of the resulting byte size is
// fatal: it means the caller's bound was inconsistent with address-space
// limits, which is an invariant violation rather than a runtime
// condition.
func (g *Guard) Grow(block []byte, cur Capacity, req GrowthRequest) ([]byte, Capacity, error) {
	inc := cur.Elems
	if req.MinIncrement > inc {
		inc = req.MinIncrement
	}
	if inc == 0 {
		// Grow-from-empty would otherwise stall at zero forever.
		inc = 1
	}

	if req.MaxElems != Unbounded {
		if room := req.MaxElems - cur.Elems; room < inc {
			if room <= 0 {
				return block, cur, ErrBoundReached
			}
			inc = room
		}
	}

	newElems, ok := checked.Add(cur.Elems, inc)
	if !ok {
		g.die()
	}
	size, ok := checked.Bytes(newElems, cur.ElemSize)
	if !ok {
		g.die()
	}

	nb := g.a.Reallocate(size, block)
	if nb == nil && size != 0 {
		g.die()
	}
	return nb, Capacity{Elems: newElems, ElemSize: cur.ElemSize}, nil
}
