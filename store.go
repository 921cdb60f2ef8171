package iddfs

import (
	"context"
	"time"
)

// Request is the input of one search.
type Request struct {
	Graph      Graph  `json:"graph"`
	StartNode  string `json:"startNode" validate:"required"`
	GoalNode   string `json:"goalNode" validate:"required"`
	MaxDepth   *int   `json:"maxDepth" validate:"required"`
	Undirected bool   `json:"undirected,omitempty"`
}

// Run generates the trace for r.
func (r Request) Run() (Trace, error) {
	var opts []Option
	if r.Undirected {
		opts = append(opts, WithUndirected())
	}
	depth := 0
	if r.MaxDepth != nil {
		depth = *r.MaxDepth
	}
	return GenerateTrace(r.Graph, r.StartNode, r.GoalNode, depth, opts...)
}

// Run is a saved search: the request, its trace, and a summary for listings.
type Run struct {
	ID        string    `json:"id"`
	Request   Request   `json:"request"`
	Steps     Trace     `json:"steps"`
	Summary   Summary   `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store defines the contract for persisting and replaying saved runs.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Runs
	SaveRun(ctx context.Context, run *Run) (string, error)
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	DeleteRun(ctx context.Context, runID string) error
}
