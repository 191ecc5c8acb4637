package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimulate_UnboundedDoubling(t *testing.T) {
	res := simulate(1000, 1, -1, 1)

	require.Equal(t, 1000, res.Appends)
	require.False(t, res.BoundReached)
	require.Equal(t, 1024, res.FinalElems)
	// 0 -> 1 -> 2 -> ... -> 1024 is 11 growth steps.
	require.Equal(t, 11, res.Reallocations)
}

func TestSimulate_BoundStopsWorkload(t *testing.T) {
	res := simulate(1000, 1, 100, 1)

	require.True(t, res.BoundReached)
	require.Equal(t, 100, res.FinalElems)
}

func TestSimulate_ElemSizeScalesBytes(t *testing.T) {
	res := simulate(16, 1, -1, 8)

	require.Equal(t, res.FinalElems*8, res.FinalBytes)
}
