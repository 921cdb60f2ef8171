package iddfs

// Option configures how GenerateTrace traverses the graph.
type Option func(*Options)

// Options holds traversal settings.
type Options struct {
	// Undirected makes every link traversable in both directions.
	// By default links are followed source → target only.
	Undirected bool
}

// DefaultOptions returns directed traversal.
func DefaultOptions() Options {
	return Options{Undirected: false}
}

// WithUndirected enumerates neighbors across both link directions.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// dlsResult is the outcome of one depth-limited search.
type dlsResult int

const (
	notFound dlsResult = iota
	cutoff
	found
)

// frame is one level of the depth-limited search: the node being expanded
// and the index of the next neighbor to try.
type frame struct {
	node string
	next int
}

// tracer holds the state of a single GenerateTrace call.
type tracer struct {
	adj    map[string][]string
	goal   string
	steps  Trace
	path   []string
	onPath map[string]bool
	stack  []frame
}

// GenerateTrace runs iterative deepening depth-first search from start to goal
// with depth limits 0..maxDepth and returns every visit, cutoff, backtrack and
// success event in order.
//
// The input is validated before any step is recorded. A trace without a
// goal_found step means the goal is not reachable within maxDepth.
func GenerateTrace(g Graph, start, goal string, maxDepth int, opts ...Option) (Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, &InvalidNodeError{Role: "start", Node: start}
	}
	if !g.HasNode(goal) {
		return nil, &InvalidNodeError{Role: "goal", Node: goal}
	}
	if maxDepth < 0 {
		return nil, &InvalidDepthError{Depth: maxDepth}
	}

	o := applyOptions(opts)
	t := &tracer{
		adj:    g.adjacency(o.Undirected),
		goal:   goal,
		steps:  Trace{},
		onPath: make(map[string]bool),
	}

	for limit := 0; limit <= maxDepth; limit++ {
		t.record(StepNewIteration, "", limit)
		if t.dls(start, limit) == found {
			break
		}
	}
	return t.steps, nil
}

// dls runs one depth-limited search. Recursion is unrolled onto t.stack so
// deep graphs cannot exhaust the goroutine stack; steps come out in the same
// order as the recursive formulation.
func (t *tracer) dls(root string, limit int) dlsResult {
	t.path = t.path[:0]
	t.stack = t.stack[:0]
	clear(t.onPath)

	if r := t.enter(root, limit); r != notFound {
		return r
	}

	result := notFound
	for len(t.stack) > 0 {
		top := len(t.stack) - 1
		nbrs := t.adj[t.stack[top].node]

		// Skip neighbors already on the path; they would close a cycle.
		for t.stack[top].next < len(nbrs) && t.onPath[nbrs[t.stack[top].next]] {
			t.stack[top].next++
		}

		if t.stack[top].next == len(nbrs) {
			t.leave(limit)
			t.stack = t.stack[:top]
			continue
		}

		next := nbrs[t.stack[top].next]
		t.stack[top].next++
		switch t.enter(next, limit) {
		case found:
			return found
		case cutoff:
			result = cutoff
		}
	}
	return result
}

// enter adds node to the path and records its visit. It returns found or
// cutoff when the node is terminal; otherwise it pushes a frame so the
// node's neighbors are explored and returns notFound.
func (t *tracer) enter(node string, limit int) dlsResult {
	t.path = append(t.path, node)
	t.onPath[node] = true
	t.record(StepVisit, node, limit)

	if node == t.goal {
		t.record(StepGoalFound, node, limit)
		return found
	}
	if len(t.path)-1 >= limit {
		t.record(StepDepthCutoff, node, limit)
		t.leave(limit)
		return cutoff
	}
	t.stack = append(t.stack, frame{node: node})
	return notFound
}

// leave records the backtrack from the last node on the path and pops it.
func (t *tracer) leave(limit int) {
	node := t.path[len(t.path)-1]
	t.record(StepBacktrack, node, limit)
	t.path = t.path[:len(t.path)-1]
	delete(t.onPath, node)
}

// record appends a step carrying a private copy of the current path.
func (t *tracer) record(typ StepType, node string, limit int) {
	path := make([]string, len(t.path))
	copy(path, t.path)
	depth := len(path) - 1
	if typ == StepNewIteration {
		depth = 0
	}
	t.steps = append(t.steps, Step{
		Type:           typ,
		Node:           node,
		Path:           path,
		Depth:          depth,
		DepthLimit:     limit,
		PseudocodeLine: typ.Line(),
	})
}
