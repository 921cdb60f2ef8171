package iddfs

// Summary condenses a trace into the figures shown on the stats panel.
type Summary struct {
	Iterations int      `json:"iterations"`
	Steps      int      `json:"steps"`
	Visits     int      `json:"visits"`
	Cutoffs    int      `json:"cutoffs"`
	Backtracks int      `json:"backtracks"`
	MaxDepth   int      `json:"maxDepthReached"`
	Found      bool     `json:"found"`
	GoalPath   []string `json:"goalPath,omitempty"`
}

// Summarize counts the events of t.
func Summarize(t Trace) Summary {
	s := Summary{Steps: len(t)}
	for _, st := range t {
		switch st.Type {
		case StepNewIteration:
			s.Iterations++
			continue
		case StepVisit:
			s.Visits++
		case StepDepthCutoff:
			s.Cutoffs++
		case StepBacktrack:
			s.Backtracks++
		}
		if st.Depth > s.MaxDepth {
			s.MaxDepth = st.Depth
		}
	}
	s.Found = t.Found()
	s.GoalPath = t.GoalPath()
	return s
}
