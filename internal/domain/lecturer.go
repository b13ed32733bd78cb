package domain

import (
	"context"
	"time"
)

// Lecturer presents one or more special lectures.
// swagger:model Lecturer
type Lecturer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewLecturer returns a new Lecturer. ID is set by the repository on create.
func NewLecturer(name, description string, createdAt time.Time) *Lecturer {
	return &Lecturer{
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// LecturerRepository defines storage operations for lecturers.
type LecturerRepository interface {
	Create(ctx context.Context, lecturer *Lecturer) error
	GetByID(ctx context.Context, id int64) (*Lecturer, error)
}
