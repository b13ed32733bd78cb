package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"speciallecture/internal/domain"
)

type lectureRepository struct {
	DB DBTX
}

func NewLectureRepository(db DBTX) domain.LectureRepository {
	return &lectureRepository{
		DB: db,
	}
}

func (r *lectureRepository) Create(ctx context.Context, l *domain.Lecture) error {
	query := `
		INSERT INTO lectures (title, lecturer_id, starts_at, max_participants, current_participants, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		l.Title, l.LecturerID, l.StartsAt, l.MaxParticipants, l.CurrentParticipants, l.Status, l.CreatedAt, l.UpdatedAt).
		Scan(&l.ID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *lectureRepository) GetByID(ctx context.Context, id int64) (*domain.Lecture, error) {
	query := `
		SELECT id, title, lecturer_id, starts_at, max_participants, current_participants, status, created_at, updated_at
		FROM lectures
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate takes the exclusive row lock that serializes concurrent
// reservations for one lecture. Callers must be inside a TxManager
// transaction; the lock is released on commit or rollback.
func (r *lectureRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Lecture, error) {
	query := `
		SELECT id, title, lecturer_id, starts_at, max_participants, current_participants, status, created_at, updated_at
		FROM lectures
		WHERE id = $1
		FOR UPDATE
	`
	return r.getOne(ctx, query, id)
}

func (r *lectureRepository) getOne(ctx context.Context, query string, id int64) (*domain.Lecture, error) {
	l := &domain.Lecture{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.Title, &l.LecturerID, &l.StartsAt,
		&l.MaxParticipants, &l.CurrentParticipants, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return l, nil
}

const availableLecturesQuery = `
		SELECT l.id, l.title, l.lecturer_id, l.starts_at, l.max_participants, l.current_participants, l.status, l.created_at, l.updated_at,
		       p.id, p.name, p.description, p.created_at, p.updated_at
		FROM lectures l
		JOIN lecturers p ON p.id = l.lecturer_id
		WHERE l.status = 'OPEN'
		  AND l.starts_at >= $1
		  AND l.current_participants < l.max_participants
`

func (r *lectureRepository) ListAvailable(ctx context.Context, now time.Time) ([]*domain.LectureWithLecturer, error) {
	query := availableLecturesQuery + `		ORDER BY l.starts_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, now)
	if err != nil {
		return nil, mapError(err)
	}
	return scanLecturesWithLecturer(rows)
}

func (r *lectureRepository) ListAvailableExcluding(ctx context.Context, now time.Time, excludedIDs []int64) ([]*domain.LectureWithLecturer, error) {
	query := availableLecturesQuery + `		  AND NOT (l.id = ANY($2))
		ORDER BY l.starts_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, now, pq.Array(excludedIDs))
	if err != nil {
		return nil, mapError(err)
	}
	return scanLecturesWithLecturer(rows)
}

func scanLecturesWithLecturer(rows *sql.Rows) ([]*domain.LectureWithLecturer, error) {
	defer rows.Close()

	results := make([]*domain.LectureWithLecturer, 0)
	for rows.Next() {
		l := &domain.Lecture{}
		p := &domain.Lecturer{}
		if err := rows.Scan(
			&l.ID, &l.Title, &l.LecturerID, &l.StartsAt,
			&l.MaxParticipants, &l.CurrentParticipants, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &domain.LectureWithLecturer{Lecture: l, Lecturer: p})
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return results, nil
}

func (r *lectureRepository) IncrementParticipants(ctx context.Context, id int64) error {
	query := `
		UPDATE lectures
		SET current_participants = current_participants + 1, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return mapError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *lectureRepository) SetStatus(ctx context.Context, id int64, status domain.LectureStatus) error {
	query := `
		UPDATE lectures
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		return mapError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
