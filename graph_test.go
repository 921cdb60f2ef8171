package iddfs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meikuraledutech/iddfs"
)

func TestEndpoint_DecodesStringsAndObjects(t *testing.T) {
	body := `{
		"nodes": [{"id": "A"}, {"id": "B"}, {"id": "C"}],
		"links": [
			{"source": "A", "target": "B"},
			{"source": {"id": "B", "x": 10.5, "index": 1}, "target": {"id": "C"}}
		]
	}`
	var g iddfs.Graph
	require.NoError(t, json.Unmarshal([]byte(body), &g))

	require.Len(t, g.Links, 2)
	assert.Equal(t, iddfs.Endpoint("B"), g.Links[1].Source)
	assert.Equal(t, iddfs.Endpoint("C"), g.Links[1].Target)
	require.NoError(t, g.Validate())

	out, err := json.Marshal(g.Links[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"B","target":"C"}`, string(out))
}

func TestEndpoint_RejectsOtherShapes(t *testing.T) {
	var e iddfs.Endpoint
	assert.Error(t, json.Unmarshal([]byte(`42`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"id": 7}`), &e))
}

func TestGraph_Validate(t *testing.T) {
	tests := []struct {
		name    string
		graph   iddfs.Graph
		wantErr bool
	}{
		{"empty", iddfs.Graph{}, false},
		{"tree", binaryTree(), false},
		{"self loop", graphOf("A>A"), false},
		{"empty id", iddfs.Graph{Nodes: []iddfs.Node{{ID: ""}}}, true},
		{"duplicate id", iddfs.Graph{Nodes: []iddfs.Node{{ID: "A"}, {ID: "B"}, {ID: "A"}}}, true},
		{"unknown source", iddfs.Graph{
			Nodes: []iddfs.Node{{ID: "A"}},
			Links: []iddfs.Link{{Source: "Q", Target: "A"}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, iddfs.ErrMalformedGraph)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateTrace_SelfLoopIsSkipped(t *testing.T) {
	g := graphOf("A>A", "A>B")
	tr, err := iddfs.GenerateTrace(g, "A", "B", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, tr.GoalPath())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"balancedTree", "cyclicGraph", "unbalancedTree"}, iddfs.PresetNames())

	g, ok := iddfs.Preset("balancedTree")
	require.True(t, ok)
	assert.Len(t, g.Nodes, 15)
	assert.Len(t, g.Links, 14)

	g, ok = iddfs.Preset("cyclicGraph")
	require.True(t, ok)
	assert.Len(t, g.Nodes, 7)
	assert.Len(t, g.Links, 8)

	for _, name := range iddfs.PresetNames() {
		g, _ := iddfs.Preset(name)
		assert.NoError(t, g.Validate(), name)
	}

	// Each call hands out an independent copy.
	g.Nodes[0].ID = "mutated"
	fresh, _ := iddfs.Preset("cyclicGraph")
	assert.Equal(t, "A", fresh.Nodes[0].ID)

	_, ok = iddfs.Preset("nope")
	assert.False(t, ok)
}
