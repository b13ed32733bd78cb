package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"speciallecture/internal/domain"
)

// TxManager implements domain.Transactor over a single *sql.DB. Each
// WithinTx call runs against one transaction with repositories bound to
// it; row locks taken through those repositories are held until the
// transaction commits or rolls back.
type TxManager struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// NewTxManager returns a TxManager. A positive lockTimeout bounds how long
// a transaction waits for a row lock; past it the statement fails and the
// caller sees a retryable domain.ErrTxConflict.
func NewTxManager(db *sql.DB, lockTimeout time.Duration) *TxManager {
	return &TxManager{db: db, lockTimeout: lockTimeout}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(domain.TxRepositories) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}

	if m.lockTimeout > 0 {
		// SET does not take bind parameters; the value is derived from a
		// duration, never from user input.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%d'", m.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return mapError(err)
		}
	}

	repos := domain.TxRepositories{
		Users:         NewUserRepository(tx),
		Lectures:      NewLectureRepository(tx),
		Registrations: NewRegistrationRepository(tx),
	}

	if err := fn(repos); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return mapError(err)
	}
	return nil
}
