package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WithSession(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE regions").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = NewStore(db).WithSession(ctx, func(s Session) error {
			_, err := s.ExecContext(ctx, "UPDATE regions SET name = 'x'")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and wraps fn error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sentinel := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err = NewStore(db).WithSession(ctx, func(Session) error { return sentinel })

		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.Contains(t, err.Error(), "store session: boom")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		called := false
		err = NewStore(db).WithSession(ctx, func(Session) error {
			called = true
			return nil
		})

		require.Error(t, err)
		assert.False(t, called)
		assert.Contains(t, err.Error(), "store session: begin: connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err = NewStore(db).WithSession(ctx, func(Session) error { return nil })

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store session: commit: serialization failure")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
