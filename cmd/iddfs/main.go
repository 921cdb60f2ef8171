// Command iddfs generates iterative deepening search traces, either as an
// HTTP service for the visualizer or one-shot from the command line.
//
// Usage:
//
//	iddfs serve --config iddfs.yaml
//	iddfs trace --preset balancedTree --start A --goal E --max-depth 2
//	iddfs generate --nodes 8 --seed 1
//	iddfs verify --graph graph.json --trace trace.json
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "iddfs",
		Short:         "Iterative deepening DFS trace generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), traceCmd(), generateCmd(), verifyCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "iddfs:", err)
		os.Exit(1)
	}
}
