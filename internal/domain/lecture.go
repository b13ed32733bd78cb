package domain

import (
	"context"
	"time"
)

// LectureStatus is the lifecycle state of a lecture. Transitions are
// monotonic: OPEN may become CLOSED, never the reverse.
type LectureStatus string

const (
	LectureStatusOpen   LectureStatus = "OPEN"
	LectureStatusClosed LectureStatus = "CLOSED"
)

// DefaultMaxParticipants is the seat limit applied when a lecture is
// created without an explicit capacity.
const DefaultMaxParticipants = 30

// Lecture represents a capacity-limited scheduled special lecture.
// swagger:model Lecture
type Lecture struct {
	ID                  int64         `json:"id"`
	Title               string        `json:"title"`
	LecturerID          int64         `json:"lecturer_id"`
	StartsAt            time.Time     `json:"starts_at"`
	MaxParticipants     int           `json:"max_participants"`
	CurrentParticipants int           `json:"current_participants"`
	Status              LectureStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// NewLecture returns a new open Lecture with no participants. ID is set by
// the repository on create.
func NewLecture(title string, lecturerID int64, startsAt time.Time, maxParticipants int, createdAt time.Time) *Lecture {
	return &Lecture{
		Title:           title,
		LecturerID:      lecturerID,
		StartsAt:        startsAt,
		MaxParticipants: maxParticipants,
		Status:          LectureStatusOpen,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

// IsFull reports whether every seat is taken.
func (l *Lecture) IsFull() bool {
	return l.CurrentParticipants >= l.MaxParticipants
}

// HasStarted reports whether the lecture start time has passed at now.
func (l *Lecture) HasStarted(now time.Time) bool {
	return !now.Before(l.StartsAt)
}

// LectureWithLecturer bundles a lecture with its lecturer for listings.
type LectureWithLecturer struct {
	Lecture  *Lecture  `json:"lecture"`
	Lecturer *Lecturer `json:"lecturer"`
}

// LectureRepository defines storage operations for lectures. The write
// methods (GetByIDForUpdate, IncrementParticipants, SetStatus) are only
// called with repositories bound to a Transactor transaction.
type LectureRepository interface {
	Create(ctx context.Context, lecture *Lecture) error
	GetByID(ctx context.Context, id int64) (*Lecture, error)
	// GetByIDForUpdate reads the lecture under an exclusive row lock that
	// is held until the enclosing transaction commits or rolls back,
	// serializing all concurrent reservations for the same lecture.
	GetByIDForUpdate(ctx context.Context, id int64) (*Lecture, error)
	ListAvailable(ctx context.Context, now time.Time) ([]*LectureWithLecturer, error)
	ListAvailableExcluding(ctx context.Context, now time.Time, excludedIDs []int64) ([]*LectureWithLecturer, error)
	IncrementParticipants(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status LectureStatus) error
}

// LectureQueryService defines the read-only lecture and registration
// queries. Reads run outside reservation transactions and take no locks;
// read-committed visibility of in-flight reservations is acceptable.
type LectureQueryService interface {
	// ListAvailableLectures returns open, future lectures with free seats,
	// ordered by start time ascending.
	ListAvailableLectures(ctx context.Context) ([]*LectureWithLecturer, error)
	// ListAvailableLecturesForUser is ListAvailableLectures minus lectures
	// the user already has a registration for. An unknown user yields an
	// empty result, not an error.
	ListAvailableLecturesForUser(ctx context.Context, userID string) ([]*LectureWithLecturer, error)
	ListUserRegistrations(ctx context.Context, userID string) ([]*RegistrationWithLecture, error)
	// GetRegistration returns the one registration for the pair, or
	// ErrNotFound.
	GetRegistration(ctx context.Context, userID string, lectureID int64) (*Registration, error)
}
