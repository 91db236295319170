// Package pgstore is a PostgreSQL implementation of prefs.Store.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/prefs"
)

// PgxPool is the subset of a connection pool used by the store.
// It is implemented by *pgxpool.Pool and pgxmock.PgxPoolIface.
type PgxPool interface {
	// Exec executes a SQL command and returns the command tag.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	// QueryRow executes a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// Close shuts down the pool and frees resources.
	Close()
}

// Store keeps preferences in the `preferences` table.
type Store struct{ pool PgxPool }

var _ prefs.Store = (*Store)(nil)

// New opens a pool for dsn. Run migrate.Up first.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// NewWithPool wraps an existing pool.
func NewWithPool(pool PgxPool) *Store { return &Store{pool: pool} }

// Close closes the underlying pool.
func (s *Store) Close() { s.pool.Close() }

// Get implements prefs.Store.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM preferences WHERE key=$1`
	var v string
	err := s.pool.QueryRow(ctx, q, key).Scan(&v)
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return "", false, nil
	default:
		return "", false, wrap("get", key, err)
	}
}

// Set implements prefs.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := prefs.CheckEntry(key, value); err != nil {
		return err
	}
	const q = `
INSERT INTO preferences (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		return wrap("set", key, err)
	}
	return nil
}

// Delete implements prefs.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM preferences WHERE key=$1`
	if _, err := s.pool.Exec(ctx, q, key); err != nil {
		return wrap("delete", key, err)
	}
	return nil
}

func wrap(op, key string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("pgstore %s %q: %w: %w", op, key, errs.ErrPersistence, err)
}
