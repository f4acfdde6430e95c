package repository

import (
	"errors"
	"fmt"
)

// ErrConstraintViolation matches every *ConstraintError via errors.Is.
var ErrConstraintViolation = errors.New("constraint violation")

// ConstraintKind identifies which integrity rule a write broke.
type ConstraintKind string

const (
	ForeignKey ConstraintKind = "foreign_key"
	Unique     ConstraintKind = "unique"
	NotNull    ConstraintKind = "not_null"
	Check      ConstraintKind = "check"
	Other      ConstraintKind = "other"
)

// ConstraintError reports a write rejected by the store's integrity rules,
// such as a walk referencing a difficulty that does not exist.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%s constraint violated: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s constraint %q violated: %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }
