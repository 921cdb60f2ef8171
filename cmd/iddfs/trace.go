package main

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/iddfs"
)

func traceCmd() *cobra.Command {
	var (
		graphPath  string
		preset     string
		start      string
		goal       string
		maxDepth   int
		undirected bool
		summary    bool
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the step trace of one search as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(graphPath, preset)
			if err != nil {
				return err
			}
			req := iddfs.Request{
				Graph:      g,
				StartNode:  start,
				GoalNode:   goal,
				MaxDepth:   &maxDepth,
				Undirected: undirected,
			}
			trace, err := req.Run()
			if err != nil {
				return err
			}
			if summary {
				return printJSON(cmd, iddfs.Summarize(trace))
			}
			return printJSON(cmd, trace)
		},
	}
	f := cmd.Flags()
	f.StringVar(&graphPath, "graph", "", "graph JSON file ({\"nodes\": [...], \"links\": [...]})")
	f.StringVar(&preset, "preset", "", "built-in graph: balancedTree, unbalancedTree, cyclicGraph")
	f.StringVar(&start, "start", "", "start node id")
	f.StringVar(&goal, "goal", "", "goal node id")
	f.IntVar(&maxDepth, "max-depth", 3, "deepest iteration limit")
	f.BoolVar(&undirected, "undirected", false, "follow links in both directions")
	f.BoolVar(&summary, "summary", false, "print only the summary")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}

// loadGraph reads a graph from a JSON file or a preset; exactly one must be given.
func loadGraph(path, preset string) (iddfs.Graph, error) {
	switch {
	case path != "" && preset != "":
		return iddfs.Graph{}, errors.New("--graph and --preset are mutually exclusive")
	case preset != "":
		g, ok := iddfs.Preset(preset)
		if !ok {
			return iddfs.Graph{}, errors.Newf("unknown preset %q", preset)
		}
		return g, nil
	case path != "":
		var g iddfs.Graph
		if err := readJSON(path, &g); err != nil {
			return iddfs.Graph{}, err
		}
		return g, nil
	}
	return iddfs.Graph{}, errors.New("one of --graph or --preset is required")
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
