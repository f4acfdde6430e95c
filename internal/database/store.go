package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Session is the subset of *sql.Tx that repositories run statements against.
type Session interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ Session = (*sql.Tx)(nil)

// Store hands out one transaction-scoped session per call on top of the
// database/sql connection pool. It never retries.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// WithSession runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. Errors keep their identity for errors.Is
// and errors.As but gain a "store session" prefix.
func (s *Store) WithSession(ctx context.Context, fn func(Session) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store session: begin: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("store session: %w (rollback: %v)", err, rbErr)
		}
		return fmt.Errorf("store session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store session: commit: %w", err)
	}
	return nil
}
