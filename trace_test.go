package iddfs_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meikuraledutech/iddfs"
)

// graphOf builds a graph from "src>dst" link specs. Extra isolated nodes may
// be listed as plain ids.
func graphOf(specs ...string) iddfs.Graph {
	var g iddfs.Graph
	seen := map[string]bool{}
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			g.Nodes = append(g.Nodes, iddfs.Node{ID: id})
		}
	}
	for _, s := range specs {
		if src, dst, ok := strings.Cut(s, ">"); ok {
			add(src)
			add(dst)
			g.Links = append(g.Links, iddfs.Link{Source: iddfs.Endpoint(src), Target: iddfs.Endpoint(dst)})
			continue
		}
		add(s)
	}
	return g
}

func binaryTree() iddfs.Graph {
	return graphOf("A>B", "A>C", "B>D", "B>E")
}

// describe renders a trace compactly for sequence comparisons.
func describe(tr iddfs.Trace) []string {
	out := make([]string, len(tr))
	for i, s := range tr {
		if s.Type == iddfs.StepNewIteration {
			out[i] = fmt.Sprintf("iter %d", s.DepthLimit)
			continue
		}
		out[i] = fmt.Sprintf("%s %s d%d", s.Type, s.Node, s.Depth)
	}
	return out
}

func TestGenerateTrace_BinaryTree(t *testing.T) {
	g := binaryTree()
	tr, err := iddfs.GenerateTrace(g, "A", "E", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"iter 0",
		"visit A d0", "depth_cutoff A d0", "backtrack A d0",
		"iter 1",
		"visit A d0",
		"visit B d1", "depth_cutoff B d1", "backtrack B d1",
		"visit C d1", "depth_cutoff C d1", "backtrack C d1",
		"backtrack A d0",
		"iter 2",
		"visit A d0",
		"visit B d1",
		"visit D d2", "depth_cutoff D d2", "backtrack D d2",
		"visit E d2", "goal_found E d2",
	}, describe(tr))

	last := tr[len(tr)-1]
	assert.Equal(t, []string{"A", "B", "E"}, last.Path)
	assert.Equal(t, 2, last.DepthLimit)
	assert.Equal(t, 11, last.PseudocodeLine)
	assert.True(t, tr.Found())
	require.NoError(t, tr.Validate(g))
}

func TestGenerateTrace_PseudocodeLines(t *testing.T) {
	tr, err := iddfs.GenerateTrace(binaryTree(), "A", "E", 2)
	require.NoError(t, err)

	want := map[iddfs.StepType]int{
		iddfs.StepNewIteration: 2,
		iddfs.StepVisit:        10,
		iddfs.StepGoalFound:    11,
		iddfs.StepDepthCutoff:  12,
		iddfs.StepBacktrack:    16,
	}
	for i, s := range tr {
		assert.Equal(t, want[s.Type], s.PseudocodeLine, "step %d (%s)", i, s.Type)
	}
	assert.Len(t, iddfs.Pseudocode(), 16)
}

func TestGenerateTrace_InvalidNode(t *testing.T) {
	tr, err := iddfs.GenerateTrace(binaryTree(), "A", "Z", 2)
	assert.Nil(t, tr)
	require.ErrorIs(t, err, iddfs.ErrInvalidNode)

	var nodeErr *iddfs.InvalidNodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "goal", nodeErr.Role)
	assert.Equal(t, "Z", nodeErr.Node)
	assert.Equal(t, "InvalidNodeError", iddfs.Kind(err))

	_, err = iddfs.GenerateTrace(binaryTree(), "Q", "A", 2)
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "start", nodeErr.Role)
}

func TestGenerateTrace_InvalidDepth(t *testing.T) {
	tr, err := iddfs.GenerateTrace(binaryTree(), "A", "E", -1)
	assert.Nil(t, tr)
	require.ErrorIs(t, err, iddfs.ErrInvalidDepth)
	assert.Equal(t, "InvalidDepthError", iddfs.Kind(err))
}

func TestGenerateTrace_MalformedGraph(t *testing.T) {
	dup := iddfs.Graph{Nodes: []iddfs.Node{{ID: "A"}, {ID: "A"}}}
	_, err := iddfs.GenerateTrace(dup, "A", "A", 1)
	require.ErrorIs(t, err, iddfs.ErrMalformedGraph)
	assert.Equal(t, "MalformedGraphError", iddfs.Kind(err))

	dangling := graphOf("A>B")
	dangling.Links = append(dangling.Links, iddfs.Link{Source: "B", Target: "X"})
	_, err = iddfs.GenerateTrace(dangling, "A", "B", 1)
	var graphErr *iddfs.MalformedGraphError
	require.ErrorAs(t, err, &graphErr)
	assert.Equal(t, "X", graphErr.Node)
}

func TestGenerateTrace_Cycle(t *testing.T) {
	g := graphOf("A>B", "B>C", "C>A")

	tr, err := iddfs.GenerateTrace(g, "A", "C", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"iter 0", "visit A d0", "depth_cutoff A d0", "backtrack A d0"}, describe(tr))
	assert.False(t, tr.Found())

	tr, err = iddfs.GenerateTrace(g, "A", "C", 2)
	require.NoError(t, err)
	require.True(t, tr.Found())
	last := tr[len(tr)-1]
	assert.Equal(t, "goal_found C d2", describe(tr)[len(tr)-1])
	assert.Equal(t, 2, last.DepthLimit)
	require.NoError(t, tr.Validate(g))
}

func TestGenerateTrace_CycleNeverRevisitsPath(t *testing.T) {
	// Goal isolated: every iteration must sweep the cycle and terminate.
	g := graphOf("A>B", "B>C", "C>A", "C>D", "D>B", "Z")
	tr, err := iddfs.GenerateTrace(g, "A", "Z", 8)
	require.NoError(t, err)
	require.NoError(t, tr.Validate(g))
	assert.False(t, tr.Found())

	last := tr[len(tr)-1]
	assert.Contains(t, []iddfs.StepType{iddfs.StepBacktrack, iddfs.StepDepthCutoff}, last.Type)
	assert.Equal(t, 8, last.DepthLimit)
}

func TestGenerateTrace_StartIsGoal(t *testing.T) {
	tr, err := iddfs.GenerateTrace(binaryTree(), "A", "A", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"iter 0", "visit A d0", "goal_found A d0"}, describe(tr))
	assert.Equal(t, []string{"A"}, tr.GoalPath())
}

func TestGenerateTrace_Unreachable(t *testing.T) {
	// C is not reachable from B following link direction.
	g := binaryTree()
	tr, err := iddfs.GenerateTrace(g, "B", "C", 3)
	require.NoError(t, err)
	require.NoError(t, tr.Validate(g))

	assert.False(t, tr.Found())
	assert.Nil(t, tr.GoalPath())
	for _, s := range tr {
		assert.NotEqual(t, iddfs.StepGoalFound, s.Type)
	}
	assert.Equal(t, iddfs.StepBacktrack, tr[len(tr)-1].Type)
}

func TestGenerateTrace_Undirected(t *testing.T) {
	g := graphOf("A>B")

	tr, err := iddfs.GenerateTrace(g, "B", "A", 2)
	require.NoError(t, err)
	assert.False(t, tr.Found())

	tr, err = iddfs.GenerateTrace(g, "B", "A", 2, iddfs.WithUndirected())
	require.NoError(t, err)
	require.True(t, tr.Found())
	assert.Equal(t, []string{"B", "A"}, tr.GoalPath())
	require.NoError(t, tr.Validate(g, iddfs.WithUndirected()))
	assert.Error(t, tr.Validate(g), "B → A is not a directed edge")
}

func TestGenerateTrace_NeighborOrder(t *testing.T) {
	// Declared out of order and duplicated; traversal is ascending and unique.
	g := graphOf("A>C", "A>B", "A>C", "Z")
	tr, err := iddfs.GenerateTrace(g, "A", "Z", 1)
	require.NoError(t, err)

	var visited []string
	for _, s := range tr {
		if s.Type == iddfs.StepVisit && s.DepthLimit == 1 {
			visited = append(visited, s.Node)
		}
	}
	assert.Equal(t, []string{"A", "B", "C"}, visited)
}

func TestGenerateTrace_Deterministic(t *testing.T) {
	for _, name := range iddfs.PresetNames() {
		g, ok := iddfs.Preset(name)
		require.True(t, ok)

		first, err := iddfs.GenerateTrace(g, "A", "G", 6)
		require.NoError(t, err)
		second, err := iddfs.GenerateTrace(g, "A", "G", 6)
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}
}

func TestGenerateTrace_IterationsIncrease(t *testing.T) {
	g, _ := iddfs.Preset("balancedTree")
	tr, err := iddfs.GenerateTrace(g, "A", "O", 5)
	require.NoError(t, err)

	var limits []int
	for _, s := range tr {
		if s.Type == iddfs.StepNewIteration {
			limits = append(limits, s.DepthLimit)
		}
	}
	// O sits at depth 3, so iterations 0..3 run and 4..5 never start.
	assert.Equal(t, []int{0, 1, 2, 3}, limits)
	require.NoError(t, tr.Validate(g))
}

func TestGenerateTrace_StepsOwnTheirPaths(t *testing.T) {
	tr, err := iddfs.GenerateTrace(binaryTree(), "A", "E", 2)
	require.NoError(t, err)

	tr[len(tr)-1].Path[0] = "X"
	for _, s := range tr[:len(tr)-1] {
		if len(s.Path) > 0 {
			assert.Equal(t, "A", s.Path[0])
		}
	}
}

func TestStep_JSON(t *testing.T) {
	tr, err := iddfs.GenerateTrace(binaryTree(), "A", "B", 1)
	require.NoError(t, err)

	b, err := json.Marshal(tr[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"new_iteration","path":[],"depth":0,"depthLimit":0,"pseudocodeLine":2}`, string(b))

	b, err = json.Marshal(tr[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"visit","node":"A","path":["A"],"depth":0,"depthLimit":0,"pseudocodeLine":10}`, string(b))
}

func TestTrace_ValidateRejectsTampering(t *testing.T) {
	g := binaryTree()
	tr, err := iddfs.GenerateTrace(g, "A", "E", 2)
	require.NoError(t, err)

	bad := append(iddfs.Trace{}, tr...)
	bad[1].PseudocodeLine = 3
	assert.Error(t, bad.Validate(g))

	bad = append(iddfs.Trace{}, tr...)
	bad = append(bad, bad[len(bad)-2])
	assert.Error(t, bad.Validate(g), "step after goal_found")

	bad = append(iddfs.Trace{}, tr...)
	bad[4] = iddfs.Step{Type: iddfs.StepNewIteration, DepthLimit: 3, Path: []string{}, PseudocodeLine: 2}
	assert.Error(t, bad.Validate(g), "skipped iteration")

	bad = append(iddfs.Trace{}, tr...)
	bad[6] = iddfs.Step{Type: iddfs.StepVisit, Node: "C", Path: []string{"A", "D", "C"}, Depth: 2, DepthLimit: 1, PseudocodeLine: 10}
	assert.Error(t, bad.Validate(g), "path off the graph")
}
