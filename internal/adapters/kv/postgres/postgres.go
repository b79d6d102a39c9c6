// Package postgres provides a PostgreSQL-backed ports.KeyValueStore. Each key
// is one row of the kv_store table; Set is an upsert that replaces the value.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.KeyValueStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store provides Postgres-backed persistence for key-value pairs.
type Store struct {
	pool *pgxpool.Pool
}

// Open creates a connection pool for dsn. maxConns <= 0 keeps the pgx default.
// The caller owns the returned pool and must Close it.
func Open(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	return pool, nil
}

// New constructs a Store on an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate creates the kv_store table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating kv_store table: %w", err)
	}
	return nil
}

// Get returns the value stored at key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("selecting key %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value at key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO kv_store (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if value == nil {
		value = []byte{}
	}
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upserting key %q: %w", key, err)
	}
	return nil
}

// Name returns the identifier used in the health registry.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}
