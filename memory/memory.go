// Package memory implements iddfs.Store in process memory. It is used when no
// database is configured and as the reference implementation in tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meikuraledutech/iddfs"
)

// MemStore implements iddfs.Store with a mutex-guarded map.
type MemStore struct {
	mu   sync.RWMutex
	runs map[string]iddfs.Run
	now  func() time.Time
}

// New creates an empty MemStore.
func New() *MemStore {
	return &MemStore{runs: make(map[string]iddfs.Run), now: time.Now}
}

// CreateSchema is a no-op.
func (s *MemStore) CreateSchema(ctx context.Context) error { return nil }

// DropSchema forgets every run.
func (s *MemStore) DropSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.runs)
	return nil
}

// SaveRun stores run. If run.ID is empty, a UUID is auto-generated.
// Returns the run ID (generated or provided).
func (s *MemStore) SaveRun(ctx context.Context, run *iddfs.Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return run.ID, nil
}

// GetRun returns nil, nil if the run does not exist.
func (s *MemStore) GetRun(ctx context.Context, runID string) (*iddfs.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[runID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// ListRuns returns up to limit runs, newest first. Steps are omitted.
func (s *MemStore) ListRuns(ctx context.Context, limit int) ([]iddfs.Run, error) {
	s.mu.RLock()
	runs := make([]iddfs.Run, 0, len(s.runs))
	for _, r := range s.runs {
		r.Steps = nil
		runs = append(runs, r)
	}
	s.mu.RUnlock()

	slices.SortFunc(runs, func(a, b iddfs.Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// DeleteRun returns iddfs.ErrRunNotFound if the run does not exist.
func (s *MemStore) DeleteRun(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[runID]; !ok {
		return iddfs.ErrRunNotFound
	}
	delete(s.runs, runID)
	return nil
}
