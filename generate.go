package iddfs

import (
	"math/rand/v2"
	"strconv"
)

const (
	MinRandomNodes = 2
	MaxRandomNodes = 50
)

// RandomGraph builds a connected random graph with numNodes nodes, clamped
// to [MinRandomNodes, MaxRandomNodes]. Nodes are named A..Z for up to 26
// nodes and 1..n beyond that.
//
// A random spanning tree is laid first, each new node hooked to a node
// already placed, then up to numNodes/2 extra links are added between
// distinct pairs not yet linked in either direction.
func RandomGraph(numNodes int, rnd *rand.Rand) Graph {
	n := max(MinRandomNodes, min(numNodes, MaxRandomNodes))

	g := Graph{Nodes: make([]Node, n), Links: []Link{}}
	for i := range g.Nodes {
		if n <= 26 {
			g.Nodes[i].ID = string(rune('A' + i))
		} else {
			g.Nodes[i].ID = strconv.Itoa(i + 1)
		}
	}

	linked := make(map[[2]string]bool)
	link := func(u, v string) {
		g.Links = append(g.Links, Link{Source: Endpoint(u), Target: Endpoint(v)})
		linked[[2]string{u, v}] = true
		linked[[2]string{v, u}] = true
	}

	unplaced := make([]string, 0, n-1)
	for _, node := range g.Nodes[1:] {
		unplaced = append(unplaced, node.ID)
	}
	placed := []string{g.Nodes[0].ID}
	for len(unplaced) > 0 {
		i := rnd.IntN(len(unplaced))
		next := unplaced[i]
		unplaced = append(unplaced[:i], unplaced[i+1:]...)
		link(placed[rnd.IntN(len(placed))], next)
		placed = append(placed, next)
	}

	extra := rnd.IntN(n/2 + 1)
	for range extra {
		u := g.Nodes[rnd.IntN(n)].ID
		v := g.Nodes[rnd.IntN(n)].ID
		if u != v && !linked[[2]string{u, v}] {
			link(u, v)
		}
	}
	return g
}
