package main

import (
	"fmt"

	"github.com/joshuapare/memkit/arena"
	"github.com/spf13/cobra"
)

var (
	arenaCreateSize int
	arenaGrowBy     int
)

func init() {
	cmd := newArenaCmd()

	create := newArenaCreateCmd()
	create.Flags().IntVar(&arenaCreateSize, "size", 4096, "Initial region size in bytes")
	cmd.AddCommand(create)

	grow := newArenaGrowCmd()
	grow.Flags().IntVar(&arenaGrowBy, "by", 4096, "Bytes to grow the region by")
	cmd.AddCommand(grow)

	cmd.AddCommand(newArenaInfoCmd())

	rootCmd.AddCommand(cmd)
}

func newArenaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arena",
		Short: "Manage file-backed arena regions",
	}
}

func newArenaCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <path>",
		Short: "Create a new arena file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arena.Create(args[0], arenaCreateSize)
			if err != nil {
				return err
			}
			defer a.Close()
			printInfo("created %s (%d bytes)\n", args[0], a.Size())
			return nil
		},
	}
}

func newArenaGrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grow <path>",
		Short: "Extend an existing arena file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arena.Open(args[0])
			if err != nil {
				return err
			}
			defer a.Close()
			before := a.Size()
			if err := a.Grow(arenaGrowBy); err != nil {
				return fmt.Errorf("grow %s: %w", args[0], err)
			}
			printInfo("grew %s: %d -> %d bytes\n", args[0], before, a.Size())
			return nil
		},
	}
}

func newArenaInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Show arena region size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arena.Open(args[0])
			if err != nil {
				return err
			}
			defer a.Close()
			if jsonOut {
				return printJSON(map[string]any{
					"path": args[0],
					"size": a.Size(),
				})
			}
			printInfo("%s: %d bytes\n", args[0], a.Size())
			return nil
		},
	}
}
