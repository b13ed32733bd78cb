package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"speciallecture/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations \(user_id, lecture_id, status, created_at, updated_at\)`).
					WithArgs("efforthye", int64(1), domain.RegistrationStatusApproved, createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
			},
			wantID: 10,
		},
		{
			name: "duplicate pair",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{
						Code:       pqUniqueViolation,
						Constraint: "registrations_user_lecture_unique",
					})
			},
			wantErr: domain.ErrDuplicateRegistration,
		},
		{
			name: "connection lost",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			reg := domain.NewRegistration("efforthye", 1, domain.RegistrationStatusApproved, createdAt)
			err = repo.Create(ctx, reg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, reg.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByUserAndLecture(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, user_id, lecture_id, status, created_at, updated_at\s+FROM registrations\s+WHERE user_id = \$1 AND lecture_id = \$2`).
			WithArgs("efforthye", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "lecture_id", "status", "created_at", "updated_at"}).
				AddRow(int64(10), "efforthye", int64(1), "APPROVED", createdAt, createdAt))

		repo := NewRegistrationRepository(db)
		reg, err := repo.GetByUserAndLecture(ctx, "efforthye", 1)
		require.NoError(t, err)
		require.Equal(t, domain.RegistrationStatusApproved, reg.Status)
		require.Equal(t, "efforthye", reg.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM registrations`).
			WithArgs("ghost", int64(1)).
			WillReturnError(sql.ErrNoRows)

		repo := NewRegistrationRepository(db)
		_, err = repo.GetByUserAndLecture(ctx, "ghost", 1)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRegistrationRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	startsAt := time.Date(2026, 4, 20, 13, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"id", "user_id", "lecture_id", "status", "created_at", "updated_at",
		"id", "title", "lecturer_id", "starts_at",
		"max_participants", "current_participants", "status",
		"created_at", "updated_at",
	}
	mock.ExpectQuery(`FROM registrations r\s+JOIN lectures l ON l\.id = r\.lecture_id\s+WHERE r\.user_id = \$1\s+ORDER BY r\.created_at DESC`).
		WithArgs("efforthye").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(10), "efforthye", int64(1), "APPROVED", createdAt, createdAt,
				int64(1), "Distributed Systems", int64(7), startsAt, 30, 30, "CLOSED", createdAt, createdAt).
			AddRow(int64(11), "efforthye", int64(2), "REJECTED", createdAt, createdAt,
				int64(2), "Database Internals", int64(8), startsAt, 30, 30, "CLOSED", createdAt, createdAt))

	repo := NewRegistrationRepository(db)
	regs, err := repo.ListByUserID(ctx, "efforthye")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	require.Equal(t, domain.RegistrationStatusApproved, regs[0].Registration.Status)
	require.Equal(t, "Distributed Systems", regs[0].Lecture.Title)
	require.Equal(t, domain.RegistrationStatusRejected, regs[1].Registration.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_ListLectureIDsByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("with registrations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT lecture_id\s+FROM registrations\s+WHERE user_id = \$1`).
			WithArgs("efforthye").
			WillReturnRows(sqlmock.NewRows([]string{"lecture_id"}).AddRow(int64(1)).AddRow(int64(3)))

		repo := NewRegistrationRepository(db)
		ids, err := repo.ListLectureIDsByUserID(ctx, "efforthye")
		require.NoError(t, err)
		require.Equal(t, []int64{1, 3}, ids)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT lecture_id`).
			WithArgs("newcomer").
			WillReturnRows(sqlmock.NewRows([]string{"lecture_id"}))

		repo := NewRegistrationRepository(db)
		ids, err := repo.ListLectureIDsByUserID(ctx, "newcomer")
		require.NoError(t, err)
		require.Empty(t, ids)
	})
}
