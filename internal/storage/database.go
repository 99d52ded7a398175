// Package storage persists the local record of past generation runs.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/repograph/internal/core"
)

// Generation is one recorded generation run.
type Generation struct {
	ID           int64     `db:"id"`
	Owner        string    `db:"owner"`
	Repo         string    `db:"repo"`
	Provider     string    `db:"provider"`
	Instructions string    `db:"instructions"`
	Cost         string    `db:"cost"`
	UsedOwnKey   bool      `db:"used_own_key"`
	Diagram      string    `db:"diagram"`
	Explanation  string    `db:"explanation"`
	CreatedAt    time.Time `db:"created_at"`
}

// Store defines the interface for all database operations.
//
//go:generate mockgen -destination=../../mocks/mock_storage_store.go -package=mocks . Store
type Store interface {
	SaveGeneration(ctx context.Context, gen *Generation) error
	LatestForRepo(ctx context.Context, ref core.RepoRef) (*Generation, error)
	ListGenerations(ctx context.Context, limit int) ([]*Generation, error)
}

type sqliteStore struct {
	db *sqlx.DB
}

// NewStore creates a new Store
func NewStore(db *sqlx.DB) Store {
	return &sqliteStore{db: db}
}

// SaveGeneration inserts a new generation record.
func (s *sqliteStore) SaveGeneration(ctx context.Context, gen *Generation) error {
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now()
	}
	query := `INSERT INTO generations (owner, repo, provider, instructions, cost, used_own_key, diagram, explanation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		gen.Owner, gen.Repo, gen.Provider, gen.Instructions, gen.Cost,
		gen.UsedOwnKey, gen.Diagram, gen.Explanation, gen.CreatedAt)
	return err
}

// LatestForRepo retrieves the most recent generation for a repository, or
// nil when none has been recorded.
func (s *sqliteStore) LatestForRepo(ctx context.Context, ref core.RepoRef) (*Generation, error) {
	query := `
		SELECT id, owner, repo, provider, instructions, cost, used_own_key, diagram, explanation, created_at
		FROM generations
		WHERE owner = ? AND repo = ? AND provider = ?
		ORDER BY created_at DESC
		LIMIT 1`

	var gen Generation
	err := s.db.GetContext(ctx, &gen, query, ref.Owner, ref.Repo, string(ref.Provider))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gen, nil
}

// ListGenerations returns the most recent runs, newest first.
func (s *sqliteStore) ListGenerations(ctx context.Context, limit int) ([]*Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, owner, repo, provider, instructions, cost, used_own_key, diagram, explanation, created_at
		FROM generations
		ORDER BY created_at DESC
		LIMIT ?`

	var gens []*Generation
	if err := s.db.SelectContext(ctx, &gens, query, limit); err != nil {
		return nil, err
	}
	return gens, nil
}
