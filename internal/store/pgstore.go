package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists snapshots in Postgres as a single JSONB document.
// It is a drop-in alternative to FileStore for deployments that already
// run a database; the core never sees which one is wired.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore connects to Postgres and ensures the snapshot table exists
func NewPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &PGStore{pool: pool}, nil
}

// Load reads the snapshot row. No row means "no prior state"; a document
// that does not match the snapshot schema is reported the same way.
func (ps *PGStore) Load(ctx context.Context) (*Snapshot, error) {
	var data []byte
	err := ps.pool.QueryRow(ctx, `SELECT data FROM snapshots WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("store: snapshot row does not match the snapshot schema, regenerating: %v", err)
		return nil, nil
	}

	return &snap, nil
}

// Save upserts the snapshot row wholesale
func (ps *PGStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = ps.pool.Exec(ctx, `
		INSERT INTO snapshots (id, data, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Close releases the connection pool
func (ps *PGStore) Close() {
	ps.pool.Close()
}
