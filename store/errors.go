package store

import (
	"context"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Domain errors surfaced by the stores. Handlers map these to HTTP statuses
// at the route boundary; anything else is a server error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyLiked       = errors.New("article already liked")
	ErrNotLiked           = errors.New("article hasn't been liked yet")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyComment       = errors.New("comment text is empty")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("conflicting concurrent update")
	// ErrStoreTimeout marks a store access that hit its deadline. The
	// condition is transient and the request may be retried.
	ErrStoreTimeout = errors.New("store access timed out")
)

const pgUniqueViolation = "23505"

// isUniqueViolation detects a uniqueness-constraint failure from either
// supported dialect (postgres in production, sqlite in tests).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// normalize translates driver and context errors into the domain taxonomy
// and wraps everything else with the given operation name.
func normalize(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return ErrStoreTimeout
	default:
		return errors.Wrap(err, op)
	}
}
