package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/meikuraledutech/iddfs"
	"github.com/meikuraledutech/iddfs/memory"
)

func main() {
	ctx := context.Background()

	// Swap in postgres.New(pool) to keep runs across restarts.
	var store iddfs.Store = memory.New()

	// ── Trace a preset ────────────────────────────────────────────────
	g, _ := iddfs.Preset("balancedTree")
	depth := 3
	req := iddfs.Request{Graph: g, StartNode: "A", GoalNode: "K", MaxDepth: &depth}

	trace, err := req.Run()
	if err != nil {
		log.Fatalf("trace: %v", err)
	}
	fmt.Printf("trace: %d steps\n", len(trace))
	for _, s := range trace[:8] {
		fmt.Printf("  line %2d  %-13s %-2s depth=%d limit=%d path=%v\n",
			s.PseudocodeLine, s.Type, s.Node, s.Depth, s.DepthLimit, s.Path)
	}

	summary := iddfs.Summarize(trace)
	fmt.Println("\nsummary:")
	printJSON(summary)

	// ── Rejected inputs ───────────────────────────────────────────────
	if _, err := iddfs.GenerateTrace(g, "A", "Z", 2); err != nil {
		fmt.Printf("\n%s: %v\n", iddfs.Kind(err), err)
	}

	// ── Save and replay ───────────────────────────────────────────────
	id, err := store.SaveRun(ctx, &iddfs.Run{Request: req, Steps: trace, Summary: summary})
	if err != nil {
		log.Fatalf("save run: %v", err)
	}
	run, err := store.GetRun(ctx, id)
	if err != nil {
		log.Fatalf("get run: %v", err)
	}
	fmt.Printf("\nreplayed run %s: %d steps, goal path %v\n", run.ID, len(run.Steps), run.Summary.GoalPath)
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
