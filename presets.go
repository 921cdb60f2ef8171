package iddfs

import "sort"

func chain(pairs ...string) []Link {
	links := make([]Link, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		links = append(links, Link{Source: Endpoint(pairs[i]), Target: Endpoint(pairs[i+1])})
	}
	return links
}

func nodes(ids ...string) []Node {
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{ID: id}
	}
	return out
}

// presets are built on each call so callers may edit what they get back.
var presets = map[string]func() Graph{
	"balancedTree": func() Graph {
		return Graph{
			Nodes: nodes("A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O"),
			Links: chain(
				"A", "B", "A", "C",
				"B", "D", "B", "E",
				"C", "F", "C", "G",
				"D", "H", "D", "I",
				"E", "J", "E", "K",
				"F", "L", "F", "M",
				"G", "N", "G", "O",
			),
		}
	},
	"unbalancedTree": func() Graph {
		return Graph{
			Nodes: nodes("A", "B", "C", "D", "E", "F", "G"),
			Links: chain(
				"A", "B", "B", "C",
				"C", "D", "D", "E",
				"A", "F", "F", "G",
			),
		}
	},
	"cyclicGraph": func() Graph {
		return Graph{
			Nodes: nodes("A", "B", "C", "D", "E", "F", "G"),
			Links: chain(
				"A", "B", "B", "C",
				"C", "D", "D", "A",
				"D", "E", "E", "F",
				"F", "G", "G", "C",
			),
		}
	},
}

// PresetNames lists the built-in graphs in name order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the named built-in graph.
func Preset(name string) (Graph, bool) {
	build, ok := presets[name]
	if !ok {
		return Graph{}, false
	}
	return build(), true
}
