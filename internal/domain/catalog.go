package domain

import (
	"context"
	"time"
)

// CatalogService manages the entities the reservation core reads: users,
// lecturers, and the lectures themselves.
type CatalogService interface {
	// CreateLecture creates an open lecture. A maxParticipants of zero
	// falls back to DefaultMaxParticipants.
	CreateLecture(ctx context.Context, title string, lecturerID int64, startsAt time.Time, maxParticipants int) (*Lecture, error)
	CreateLecturer(ctx context.Context, name, description string) (*Lecturer, error)
	CreateUser(ctx context.Context, userID, name string) (*User, error)
}
