package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"

	"speciallecture/internal/domain"
)

// Postgres error codes the reservation path cares about.
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqLockNotAvailable     = "55P03"
)

// pqConnectionClass is the SQLSTATE class for connection exceptions.
const pqConnectionClass = "08"

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// mapError translates driver-level failures into the domain taxonomy.
// Lock timeouts, deadlocks, and serialization failures are retryable
// conflicts; connection-class failures mean the store is unreachable.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqSerializationFailure, pqDeadlockDetected, pqLockNotAvailable:
			return domain.ErrTxConflict
		}
		if pqErr.Code.Class() == pqConnectionClass {
			return domain.ErrStoreUnavailable
		}
		return err
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return domain.ErrStoreUnavailable
	}
	return err
}
