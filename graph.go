package iddfs

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Graph is the user-edited graph a search runs over.
type Graph struct {
	Nodes []Node `json:"nodes" validate:"min=1,maxnodes,dive"`
	Links []Link `json:"links" validate:"dive"`
}

// Node represents a vertex in the graph.
type Node struct {
	ID string `json:"id" validate:"required"`
}

// Link connects two nodes. Source → Target is the direction drawn by the UI.
type Link struct {
	Source Endpoint `json:"source" validate:"required"`
	Target Endpoint `json:"target" validate:"required"`
}

// Endpoint is a node identifier on one side of a link.
// The browser's force layout replaces link ends with node objects, so both
// "A" and {"id": "A", ...} decode to the same Endpoint.
type Endpoint string

// UnmarshalJSON accepts a plain string or an object carrying an "id" field.
func (e *Endpoint) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*e = Endpoint(obj.ID)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*e = Endpoint(s)
	return nil
}

// HasNode reports whether id names a node of g.
func (g Graph) HasNode(id string) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Validate checks the graph invariants: unique, non-empty node ids and links
// that only reference existing nodes.
func (g Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return &MalformedGraphError{Reason: "empty node id"}
		}
		if _, dup := seen[n.ID]; dup {
			return &MalformedGraphError{Reason: "duplicate node id", Node: n.ID}
		}
		seen[n.ID] = struct{}{}
	}
	for _, l := range g.Links {
		for _, end := range []Endpoint{l.Source, l.Target} {
			if _, ok := seen[string(end)]; !ok {
				return &MalformedGraphError{Reason: "link references unknown node", Node: string(end)}
			}
		}
	}
	return nil
}

// adjacency builds the neighbor lists used for traversal.
// Neighbors are sorted ascending and deduplicated so traces are reproducible.
func (g Graph) adjacency(undirected bool) map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = nil
	}
	for _, l := range g.Links {
		src, tgt := string(l.Source), string(l.Target)
		adj[src] = append(adj[src], tgt)
		if undirected && src != tgt {
			adj[tgt] = append(adj[tgt], src)
		}
	}
	for id, nbrs := range adj {
		slices.Sort(nbrs)
		adj[id] = slices.Compact(nbrs)
	}
	return adj
}

// hasEdge reports whether a link allows moving from → to.
func (g Graph) hasEdge(from, to string, undirected bool) bool {
	for _, l := range g.Links {
		if string(l.Source) == from && string(l.Target) == to {
			return true
		}
		if undirected && string(l.Source) == to && string(l.Target) == from {
			return true
		}
	}
	return false
}
