package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"speciallecture/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout = '3000'`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE lectures`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m := NewTxManager(db, 3*time.Second)
	err = m.WithinTx(ctx, func(r domain.TxRepositories) error {
		return r.Lectures.IncrementParticipants(ctx, 1)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_SkipsLockTimeoutWhenZero(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTxManager(db, 0)
	err = m.WithinTx(ctx, func(r domain.TxRepositories) error {
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollsBackOnFnError(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wantErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	m := NewTxManager(db, time.Second)
	err = m.WithinTx(ctx, func(r domain.TxRepositories) error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_MapsCommitFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		commitErr error
		wantErr   error
	}{
		{
			name:      "deadlock on commit",
			commitErr: &pq.Error{Code: pqDeadlockDetected},
			wantErr:   domain.ErrTxConflict,
		},
		{
			name:      "connection dropped",
			commitErr: &pq.Error{Code: "08006"},
			wantErr:   domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectBegin()
			mock.ExpectExec(`SET LOCAL lock_timeout`).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit().WillReturnError(tt.commitErr)

			m := NewTxManager(db, time.Second)
			err = m.WithinTx(ctx, func(r domain.TxRepositories) error {
				return nil
			})
			require.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_LockTimeoutExpiry(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: pqLockNotAvailable})
	mock.ExpectRollback()

	m := NewTxManager(db, 50*time.Millisecond)
	err = m.WithinTx(ctx, func(r domain.TxRepositories) error {
		_, err := r.Lectures.GetByIDForUpdate(ctx, 1)
		return err
	})
	require.ErrorIs(t, err, domain.ErrTxConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
