package postgres

import (
	"context"
	"database/sql"
	"errors"

	"speciallecture/internal/domain"
)

type registrationRepository struct {
	DB DBTX
}

func NewRegistrationRepository(db DBTX) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create appends one registration outcome. The registrations table is
// append-only; the (user_id, lecture_id) unique constraint rejects a
// second row for the same pair and the insert surfaces
// ErrDuplicateRegistration, failing the enclosing transaction.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (user_id, lecture_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.UserID, reg.LectureID, reg.Status, reg.CreatedAt, reg.UpdatedAt).
		Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		return mapError(err)
	}
	return nil
}

func (r *registrationRepository) GetByUserAndLecture(ctx context.Context, userID string, lectureID int64) (*domain.Registration, error) {
	query := `
		SELECT id, user_id, lecture_id, status, created_at, updated_at
		FROM registrations
		WHERE user_id = $1 AND lecture_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, userID, lectureID).
		Scan(&reg.ID, &reg.UserID, &reg.LectureID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return reg, nil
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.RegistrationWithLecture, error) {
	query := `
		SELECT r.id, r.user_id, r.lecture_id, r.status, r.created_at, r.updated_at,
		       l.id, l.title, l.lecturer_id, l.starts_at, l.max_participants, l.current_participants, l.status, l.created_at, l.updated_at
		FROM registrations r
		JOIN lectures l ON l.id = r.lecture_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	results := make([]*domain.RegistrationWithLecture, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		l := &domain.Lecture{}
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.LectureID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
			&l.ID, &l.Title, &l.LecturerID, &l.StartsAt,
			&l.MaxParticipants, &l.CurrentParticipants, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &domain.RegistrationWithLecture{Registration: reg, Lecture: l})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return results, nil
}

func (r *registrationRepository) ListLectureIDsByUserID(ctx context.Context, userID string) ([]int64, error) {
	query := `
		SELECT lecture_id
		FROM registrations
		WHERE user_id = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return ids, nil
}
