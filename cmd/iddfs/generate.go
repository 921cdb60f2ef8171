package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/meikuraledutech/iddfs"
)

func generateCmd() *cobra.Command {
	var (
		numNodes int
		seed     uint64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random connected graph as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			return printJSON(cmd, iddfs.RandomGraph(numNodes, rnd))
		},
	}
	cmd.Flags().IntVar(&numNodes, "nodes", 8, "number of nodes (2-50)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	return cmd
}
