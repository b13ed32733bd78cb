package postgres

import (
	"context"
	"database/sql"
	"errors"

	"speciallecture/internal/domain"
)

type lecturerRepository struct {
	DB DBTX
}

func NewLecturerRepository(db DBTX) domain.LecturerRepository {
	return &lecturerRepository{
		DB: db,
	}
}

func (r *lecturerRepository) Create(ctx context.Context, l *domain.Lecturer) error {
	query := `
		INSERT INTO lecturers (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, l.Name, l.Description, l.CreatedAt, l.UpdatedAt).
		Scan(&l.ID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *lecturerRepository) GetByID(ctx context.Context, id int64) (*domain.Lecturer, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM lecturers
		WHERE id = $1
	`
	l := &domain.Lecturer{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return l, nil
}
