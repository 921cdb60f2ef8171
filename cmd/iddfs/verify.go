package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meikuraledutech/iddfs"
)

func verifyCmd() *cobra.Command {
	var (
		graphPath  string
		preset     string
		tracePath  string
		undirected bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a saved trace against its graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(graphPath, preset)
			if err != nil {
				return err
			}
			var trace iddfs.Trace
			if err := readJSON(tracePath, &trace); err != nil {
				return err
			}
			var opts []iddfs.Option
			if undirected {
				opts = append(opts, iddfs.WithUndirected())
			}
			if err := trace.Validate(g, opts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d steps, found=%t\n", len(trace), trace.Found())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&graphPath, "graph", "", "graph JSON file")
	f.StringVar(&preset, "preset", "", "built-in graph")
	f.StringVar(&tracePath, "trace", "", "trace JSON file")
	f.BoolVar(&undirected, "undirected", false, "trace was generated with undirected traversal")
	_ = cmd.MarkFlagRequired("trace")
	return cmd
}
