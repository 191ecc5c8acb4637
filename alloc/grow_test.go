package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingAllocator counts heap operations so growth tests can assert on
// reallocation behavior.
type countingAllocator struct {
	heap     HeapAllocator
	allocs   int
	reallocs int
}

func (a *countingAllocator) Allocate(size int) []byte {
	a.allocs++
	return a.heap.Allocate(size)
}

func (a *countingAllocator) Reallocate(size int, b []byte) []byte {
	a.reallocs++
	return a.heap.Reallocate(size, b)
}

func (a *countingAllocator) Free(b []byte) {}

func TestGrow_DoublesByDefault(t *testing.T) {
	g := NewGuard(nil, nil)

	cur := Capacity{Elems: 4, ElemSize: 8}
	block := g.Alloc(cur.Elems, cur.ElemSize)

	block, next, err := g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: Unbounded})
	require.NoError(t, err)
	require.Equal(t, 8, next.Elems)
	require.Equal(t, 8, next.ElemSize)
	require.Len(t, block, 64)
}

func TestGrow_ClampsToBound(t *testing.T) {
	g := NewGuard(nil, nil)

	cur := Capacity{Elems: 8, ElemSize: 1}
	block := g.Alloc(cur.Elems, cur.ElemSize)

	// Raw increment would be 8; the bound allows only 2 more elements.
	block, next, err := g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: 10})
	require.NoError(t, err)
	require.Equal(t, 10, next.Elems)
	require.Len(t, block, 10)
}

func TestGrow_BoundReachedPerformsNoAllocation(t *testing.T) {
	ca := &countingAllocator{}
	g := NewGuard(ca, nil)

	cur := Capacity{Elems: 10, ElemSize: 1}
	block := g.Alloc(cur.Elems, cur.ElemSize)
	before := ca.reallocs

	// Idempotent at the bound: every call reports BoundReached.
	for i := 0; i < 3; i++ {
		nb, next, err := g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: 10})
		require.ErrorIs(t, err, ErrBoundReached)
		require.Equal(t, cur, next)
		require.Same(t, &block[0], &nb[0], "block must be returned untouched")
	}
	require.Equal(t, before, ca.reallocs)
}

func TestGrow_BoundBelowCurrent(t *testing.T) {
	g := NewGuard(nil, nil)

	cur := Capacity{Elems: 16, ElemSize: 1}
	block := g.Alloc(cur.Elems, cur.ElemSize)

	_, _, err := g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: 10})
	require.ErrorIs(t, err, ErrBoundReached)
}

func TestGrow_FromEmpty(t *testing.T) {
	g := NewGuard(nil, nil)

	block, next, err := g.Grow(nil, Capacity{Elems: 0, ElemSize: 4}, GrowthRequest{MaxElems: Unbounded})
	require.NoError(t, err)
	require.Equal(t, 1, next.Elems, "grow from empty must make progress")
	require.Len(t, block, 4)
}

func TestGrow_HonorsMinIncrement(t *testing.T) {
	g := NewGuard(nil, nil)

	cur := Capacity{Elems: 2, ElemSize: 1}
	block := g.Alloc(cur.Elems, cur.ElemSize)

	_, next, err := g.Grow(block, cur, GrowthRequest{MinIncrement: 100, MaxElems: Unbounded})
	require.NoError(t, err)
	require.Equal(t, 102, next.Elems)
}

func TestGrow_PreservesContents(t *testing.T) {
	g := NewGuard(nil, nil)

	cur := Capacity{Elems: 4, ElemSize: 1}
	block := g.Alloc(cur.Elems, cur.ElemSize)
	copy(block, "abcd")

	block, _, err := g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: Unbounded})
	require.NoError(t, err)
	require.Equal(t, "abcd", string(block[:4]))
}

func TestGrow_MonotonicUnderBound(t *testing.T) {
	g := NewGuard(nil, nil)

	cur := Capacity{Elems: 0, ElemSize: 2}
	var block []byte
	var err error
	const bound = 1000

	prev := cur.Elems
	for {
		block, cur, err = g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: bound})
		if err != nil {
			require.ErrorIs(t, err, ErrBoundReached)
			break
		}
		require.Greater(t, cur.Elems, prev)
		require.LessOrEqual(t, cur.Elems, bound)
		prev = cur.Elems
	}
	require.Equal(t, bound, cur.Elems)
}

func TestGrow_AmortizedReallocations(t *testing.T) {
	ca := &countingAllocator{}
	g := NewGuard(ca, nil)

	// k unit appends from empty: reallocation count must stay O(log k).
	const k = 100000
	var block []byte
	cur := Capacity{Elems: 0, ElemSize: 1}
	used := 0
	var err error

	for i := 0; i < k; i++ {
		if used == cur.Elems {
			block, cur, err = g.Grow(block, cur, GrowthRequest{MinIncrement: 1, MaxElems: Unbounded})
			require.NoError(t, err)
		}
		block[used] = byte(i)
		used++
	}

	limit := int(math.Ceil(math.Log2(k))) + 2
	require.LessOrEqual(t, ca.reallocs, limit,
		"%d appends took %d reallocations", k, ca.reallocs)
}

func TestGrow_InconsistentBoundIsFatal(t *testing.T) {
	g := abortGuard(t, nil)

	// A bound that admits growth whose byte size cannot be represented.
	cur := Capacity{Elems: math.MaxInt / 2, ElemSize: 4}
	require.PanicsWithValue(t, "fatal", func() {
		g.Grow(nil, cur, GrowthRequest{MinIncrement: 1, MaxElems: Unbounded})
	})
}

func TestCapacity_Bytes(t *testing.T) {
	n, ok := Capacity{Elems: 12, ElemSize: 8}.Bytes()
	require.True(t, ok)
	require.Equal(t, 96, n)

	_, ok = Capacity{Elems: math.MaxInt, ElemSize: 2}.Bytes()
	require.False(t, ok)
}
