package persistence

import (
	"errors"

	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes that signal a transaction lost a race and may be retried
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// translateError maps driver and GORM errors onto domain errors
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	if IsContentionError(err) {
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return shared.NewDomainError(shared.CodeConcurrencyConflict, pgErr.Message)
	}
	return err
}

// IsContentionError reports whether err is a PostgreSQL serialization failure or deadlock
func IsContentionError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}
