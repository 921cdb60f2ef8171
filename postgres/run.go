package postgres

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/meikuraledutech/iddfs"
)

// SaveRun inserts a run. If run.ID is empty, a UUID is auto-generated.
// Returns the run ID (generated or provided).
func (s *PGStore) SaveRun(ctx context.Context, run *iddfs.Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	graph, err := json.Marshal(run.Request.Graph)
	if err != nil {
		return "", errors.Wrap(err, "iddfs: encode graph")
	}
	steps, err := json.Marshal(run.Steps)
	if err != nil {
		return "", errors.Wrap(err, "iddfs: encode steps")
	}
	summary, err := json.Marshal(run.Summary)
	if err != nil {
		return "", errors.Wrap(err, "iddfs: encode summary")
	}

	maxDepth := 0
	if run.Request.MaxDepth != nil {
		maxDepth = *run.Request.MaxDepth
	}

	err = s.db.QueryRow(ctx,
		`INSERT INTO iddfs_runs (id, start_node, goal_node, max_depth, undirected, graph, steps, summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		run.ID, run.Request.StartNode, run.Request.GoalNode, maxDepth, run.Request.Undirected,
		graph, steps, summary,
	).Scan(&run.CreatedAt)
	if err != nil {
		return "", errors.Wrap(err, "iddfs: insert run")
	}

	return run.ID, nil
}

// GetRun fetches a single run with its full trace.
// Returns nil, nil if not found.
func (s *PGStore) GetRun(ctx context.Context, runID string) (*iddfs.Run, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, start_node, goal_node, max_depth, undirected, graph, steps, summary, created_at
		 FROM iddfs_runs WHERE id = $1`, runID)

	run, err := scanRun(row, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "iddfs: get run")
	}
	return run, nil
}

// ListRuns returns up to limit runs, newest first. Steps are not loaded.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListRuns(ctx context.Context, limit int) ([]iddfs.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, start_node, goal_node, max_depth, undirected, graph, '[]'::jsonb, summary, created_at
		 FROM iddfs_runs ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "iddfs: list runs")
	}
	defer rows.Close()

	runs := []iddfs.Run{}
	for rows.Next() {
		run, err := scanRun(rows, false)
		if err != nil {
			return nil, errors.Wrap(err, "iddfs: scan run")
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iddfs: rows runs")
	}

	return runs, nil
}

// DeleteRun deletes a run by its ID.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *PGStore) DeleteRun(ctx context.Context, runID string) error {
	ct, err := s.db.Exec(ctx, `DELETE FROM iddfs_runs WHERE id = $1`, runID)
	if err != nil {
		return errors.Wrap(err, "iddfs: delete run")
	}
	if ct.RowsAffected() == 0 {
		return iddfs.ErrRunNotFound
	}
	return nil
}

// scanRun decodes one iddfs_runs row. withSteps is false for listings.
func scanRun(row pgx.Row, withSteps bool) (*iddfs.Run, error) {
	var run iddfs.Run
	var maxDepth int
	var graph, steps, summary []byte
	if err := row.Scan(
		&run.ID, &run.Request.StartNode, &run.Request.GoalNode, &maxDepth, &run.Request.Undirected,
		&graph, &steps, &summary, &run.CreatedAt,
	); err != nil {
		return nil, err
	}
	run.Request.MaxDepth = &maxDepth

	if err := json.Unmarshal(graph, &run.Request.Graph); err != nil {
		return nil, errors.Wrap(err, "decode graph")
	}
	if err := json.Unmarshal(summary, &run.Summary); err != nil {
		return nil, errors.Wrap(err, "decode summary")
	}
	if withSteps {
		if err := json.Unmarshal(steps, &run.Steps); err != nil {
			return nil, errors.Wrap(err, "decode steps")
		}
	}
	return &run, nil
}
