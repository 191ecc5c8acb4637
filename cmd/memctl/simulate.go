package main

import (
	"fmt"

	"github.com/joshuapare/memkit/alloc"
	"github.com/joshuapare/memkit/diag"
	"github.com/spf13/cobra"
)

var (
	simAppends  int
	simMinInc   int
	simMax      int
	simElemSize int
)

func init() {
	cmd := newSimulateCmd()
	cmd.Flags().IntVar(&simAppends, "appends", 1024, "Number of unit appends to simulate")
	cmd.Flags().IntVar(&simMinInc, "min-increment", 1, "Minimum growth increment in elements")
	cmd.Flags().IntVar(&simMax, "max", -1, "Element-count bound (-1 for unbounded)")
	cmd.Flags().IntVar(&simElemSize, "elem-size", 1, "Element size in bytes")
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run the growth policy over a synthetic append workload",
		Long: `The simulate command appends elements one at a time through the memkit
growth policy and reports how many reallocations the workload needed and
how many bytes were copied between blocks.

Example:
  memctl simulate --appends 100000
  memctl simulate --appends 4096 --max 5000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate()
		},
	}
}

// simResult summarizes one simulated append workload.
type simResult struct {
	Appends       int  `json:"appends"`
	Reallocations int  `json:"reallocations"`
	FinalElems    int  `json:"final_elems"`
	FinalBytes    int  `json:"final_bytes"`
	BytesMoved    int  `json:"bytes_moved"`
	BoundReached  bool `json:"bound_reached"`
}

// tracingAllocator counts reallocations and copied bytes on top of the
// heap allocator.
type tracingAllocator struct {
	heap       alloc.HeapAllocator
	reallocs   int
	bytesMoved int
}

func (a *tracingAllocator) Allocate(size int) []byte {
	return a.heap.Allocate(size)
}

func (a *tracingAllocator) Reallocate(size int, b []byte) []byte {
	a.reallocs++
	if size < len(b) {
		a.bytesMoved += size
	} else {
		a.bytesMoved += len(b)
	}
	return a.heap.Reallocate(size, b)
}

func (a *tracingAllocator) Free(b []byte) {}

func simulate(appends, minInc, maxElems, elemSize int) simResult {
	ta := &tracingAllocator{}
	g := alloc.NewGuard(ta, diag.New("memctl"))

	var block []byte
	cur := alloc.Capacity{Elems: 0, ElemSize: elemSize}
	req := alloc.GrowthRequest{MinIncrement: minInc, MaxElems: maxElems}

	res := simResult{Appends: appends}
	used := 0
	for i := 0; i < appends; i++ {
		if used == cur.Elems {
			nb, next, err := g.Grow(block, cur, req)
			if err != nil {
				res.BoundReached = true
				break
			}
			block, cur = nb, next
		}
		used++
	}

	res.Reallocations = ta.reallocs
	res.BytesMoved = ta.bytesMoved
	res.FinalElems = cur.Elems
	res.FinalBytes = len(block)
	return res
}

func runSimulate() error {
	if simAppends < 0 {
		return fmt.Errorf("--appends must be non-negative, got %d", simAppends)
	}
	if simElemSize <= 0 {
		return fmt.Errorf("--elem-size must be positive, got %d", simElemSize)
	}

	printVerbose("simulating %d appends (min-increment=%d, max=%d, elem-size=%d)\n",
		simAppends, simMinInc, simMax, simElemSize)

	res := simulate(simAppends, simMinInc, simMax, simElemSize)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("appends:        %d\n", res.Appends)
	printInfo("reallocations:  %d\n", res.Reallocations)
	printInfo("final capacity: %d elements (%d bytes)\n", res.FinalElems, res.FinalBytes)
	printInfo("bytes moved:    %d\n", res.BytesMoved)
	if res.BoundReached {
		printInfo("bound reached before all appends completed\n")
	}
	return nil
}
