package iddfs

// StepType identifies the algorithmic event a Step records.
type StepType string

const (
	StepNewIteration StepType = "new_iteration"
	StepVisit        StepType = "visit"
	StepGoalFound    StepType = "goal_found"
	StepDepthCutoff  StepType = "depth_cutoff"
	StepBacktrack    StepType = "backtrack"
)

// pseudocode is the reference listing shown next to the animation.
// Line numbers in Step.PseudocodeLine are 1-indexed into this table.
var pseudocode = [...]string{
	"IDDFS(root, goal, maxDepth):",
	"  for depth = 0 to maxDepth:",
	"    // ← NEW ITERATION (depth limit = depth)",
	"    result = DLS(root, goal, depth, path=[])",
	"    if result == FOUND → return FOUND",
	"  return NOT_FOUND",
	"",
	"DLS(node, goal, limit, path):",
	"  add node to path",
	"  visit(node)",
	"  if node == goal → return FOUND",
	"  if depth >= limit → return CUTOFF",
	"  for each neighbor not in path:",
	"    result = DLS(neighbor, goal, limit-1, path)",
	"    if result == FOUND → return FOUND",
	"  backtrack ← remove node from path",
}

var stepLines = map[StepType]int{
	StepNewIteration: 2,
	StepVisit:        10,
	StepGoalFound:    11,
	StepDepthCutoff:  12,
	StepBacktrack:    16,
}

// Pseudocode returns a copy of the reference pseudocode lines.
func Pseudocode() []string {
	out := make([]string, len(pseudocode))
	copy(out, pseudocode[:])
	return out
}

// Valid reports whether t is a known step type.
func (t StepType) Valid() bool {
	_, ok := stepLines[t]
	return ok
}

// Line returns the pseudocode line highlighted for t, or 0 for unknown types.
func (t StepType) Line() int {
	return stepLines[t]
}

// Step is one self-contained event of the search. A renderer can draw a
// complete frame from a single Step plus the static graph.
type Step struct {
	Type           StepType `json:"type"`
	Node           string   `json:"node,omitempty"`
	Path           []string `json:"path"`
	Depth          int      `json:"depth"`
	DepthLimit     int      `json:"depthLimit"`
	PseudocodeLine int      `json:"pseudocodeLine"`
}

// Trace is the ordered log of steps produced by one search.
type Trace []Step

// Found reports whether the trace ends in a goal_found step.
func (t Trace) Found() bool {
	return len(t) > 0 && t[len(t)-1].Type == StepGoalFound
}

// GoalPath returns the path to the goal, or nil when the goal was not found.
func (t Trace) GoalPath() []string {
	if !t.Found() {
		return nil
	}
	p := t[len(t)-1].Path
	out := make([]string, len(p))
	copy(out, p)
	return out
}
