package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// SQLSTATE codes the registry reacts to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// codeErrors maps constraint and range failures to domain errors.
var codeErrors = map[string]error{
	codeUniqueViolation:     domain.ErrAlreadyExists,
	codeForeignKeyViolation: domain.ErrNotFound,
	codeCheckViolation:      domain.ErrValidation,
	codeNumericOutOfRange:   domain.ErrOverflow,
}

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row in the message: an id, an account key or a singleton name.
//
// Concurrency aborts (serialization failure, deadlock, lock timeout) wrap
// both domain.ErrConflict and the original *pgconn.PgError, so TxManager can
// still recognize them for a retry. Context errors pass through unmapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := codeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w", entity, key, mapped)
		}
		if isConcurrencyAbort(pgErr.Code) {
			return fmt.Errorf("%s %v: %w: %w", entity, key, domain.ErrConflict, err)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

func isConcurrencyAbort(code string) bool {
	switch code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return false
}

// retryable reports whether a whole transaction may be re-run after err.
// Lock timeouts are not retried: the row is busy, not contended.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
