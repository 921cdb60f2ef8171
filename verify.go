package iddfs

import "github.com/cockroachdb/errors"

// Validate checks that t honours the replay contract against g: every step
// is self-contained, paths are cycle-free walks along graph edges, iteration
// limits climb from zero one at a time, and nothing follows goal_found.
func (t Trace) Validate(g Graph, opts ...Option) error {
	o := applyOptions(opts)
	nextLimit := 0
	for i, s := range t {
		if !s.Type.Valid() {
			return errors.Newf("iddfs: step %d: unknown type %q", i, s.Type)
		}
		if s.PseudocodeLine != s.Type.Line() {
			return errors.Newf("iddfs: step %d: %s on pseudocode line %d, want %d",
				i, s.Type, s.PseudocodeLine, s.Type.Line())
		}
		if i > 0 && t[i-1].Type == StepGoalFound {
			return errors.Newf("iddfs: step %d: follows goal_found", i)
		}

		if s.Type == StepNewIteration {
			if s.DepthLimit != nextLimit {
				return errors.Newf("iddfs: step %d: iteration limit %d, want %d", i, s.DepthLimit, nextLimit)
			}
			if len(s.Path) != 0 || s.Node != "" {
				return errors.Newf("iddfs: step %d: new_iteration carries node or path", i)
			}
			nextLimit++
			continue
		}
		if nextLimit == 0 {
			return errors.Newf("iddfs: step %d: %s before first iteration", i, s.Type)
		}
		if s.DepthLimit != nextLimit-1 {
			return errors.Newf("iddfs: step %d: depth limit %d, want %d", i, s.DepthLimit, nextLimit-1)
		}

		if len(s.Path) == 0 || s.Path[len(s.Path)-1] != s.Node {
			return errors.Newf("iddfs: step %d: path %v does not end at %q", i, s.Path, s.Node)
		}
		if s.Depth != len(s.Path)-1 {
			return errors.Newf("iddfs: step %d: depth %d with path of length %d", i, s.Depth, len(s.Path))
		}
		if s.Depth > s.DepthLimit {
			return errors.Newf("iddfs: step %d: depth %d beyond limit %d", i, s.Depth, s.DepthLimit)
		}
		seen := make(map[string]bool, len(s.Path))
		for j, id := range s.Path {
			if seen[id] {
				return errors.Newf("iddfs: step %d: node %q repeated in path", i, id)
			}
			seen[id] = true
			if j > 0 && !g.hasEdge(s.Path[j-1], id, o.Undirected) {
				return errors.Newf("iddfs: step %d: no edge %s → %s", i, s.Path[j-1], id)
			}
		}
	}
	return nil
}
