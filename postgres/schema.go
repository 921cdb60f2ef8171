package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS iddfs_runs (
    id          TEXT PRIMARY KEY,
    start_node  TEXT NOT NULL,
    goal_node   TEXT NOT NULL,
    max_depth   INTEGER NOT NULL,
    undirected  BOOLEAN NOT NULL DEFAULT FALSE,
    graph       JSONB NOT NULL,
    steps       JSONB NOT NULL DEFAULT '[]',
    summary     JSONB NOT NULL DEFAULT '{}',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_iddfs_runs_created_at ON iddfs_runs(created_at DESC);
`

// CreateSchema creates the iddfs_runs table if it doesn't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return errors.Wrap(err, "iddfs: create schema")
}

// DropSchema drops the iddfs_runs table.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS iddfs_runs CASCADE;`)
	return errors.Wrap(err, "iddfs: drop schema")
}
