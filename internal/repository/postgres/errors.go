package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"nzwalks/internal/repository"
)

// SQLSTATE codes from class 23, integrity constraint violation.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// classify turns integrity constraint violations into *repository.ConstraintError
// and returns every other error unchanged.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || !strings.HasPrefix(pgErr.Code, "23") {
		return err
	}

	kind := repository.Other
	switch pgErr.Code {
	case codeForeignKeyViolation:
		kind = repository.ForeignKey
	case codeUniqueViolation:
		kind = repository.Unique
	case codeNotNullViolation:
		kind = repository.NotNull
	case codeCheckViolation:
		kind = repository.Check
	}
	return &repository.ConstraintError{Kind: kind, Constraint: pgErr.ConstraintName, Err: err}
}
