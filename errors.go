package iddfs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidNode    = errors.New("iddfs: invalid node")
	ErrInvalidDepth   = errors.New("iddfs: invalid depth")
	ErrMalformedGraph = errors.New("iddfs: malformed graph")
	ErrRunNotFound    = errors.New("iddfs: run not found")
)

// InvalidNodeError reports a start or goal node that is not part of the graph.
type InvalidNodeError struct {
	Role string // "start" or "goal"
	Node string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("iddfs: %s node %q not in graph", e.Role, e.Node)
}

func (e *InvalidNodeError) Is(target error) bool { return target == ErrInvalidNode }

// InvalidDepthError reports a negative maximum depth.
type InvalidDepthError struct {
	Depth int
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("iddfs: max depth %d is negative", e.Depth)
}

func (e *InvalidDepthError) Is(target error) bool { return target == ErrInvalidDepth }

// MalformedGraphError reports a graph that breaks its own invariants.
type MalformedGraphError struct {
	Reason string
	Node   string
}

func (e *MalformedGraphError) Error() string {
	if e.Node == "" {
		return "iddfs: malformed graph: " + e.Reason
	}
	return fmt.Sprintf("iddfs: malformed graph: %s %q", e.Reason, e.Node)
}

func (e *MalformedGraphError) Is(target error) bool { return target == ErrMalformedGraph }

// Kind names the error class for transport payloads.
// It returns "" for errors that are not search validation failures.
func Kind(err error) string {
	var (
		nodeErr  *InvalidNodeError
		depthErr *InvalidDepthError
		graphErr *MalformedGraphError
	)
	switch {
	case errors.As(err, &nodeErr):
		return "InvalidNodeError"
	case errors.As(err, &depthErr):
		return "InvalidDepthError"
	case errors.As(err, &graphErr):
		return "MalformedGraphError"
	}
	return ""
}
