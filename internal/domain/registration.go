package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the recorded outcome of one reservation attempt.
type RegistrationStatus string

const (
	RegistrationStatusApproved RegistrationStatus = "APPROVED"
	RegistrationStatusRejected RegistrationStatus = "REJECTED"
)

// Registration is the durable outcome of one user's attempt to claim a
// seat in a lecture. At most one row ever exists per (user, lecture) pair;
// rows are never updated or deleted after creation.
// swagger:model Registration
type Registration struct {
	ID        int64              `json:"id"`
	UserID    string             `json:"user_id"`
	LectureID int64              `json:"lecture_id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewRegistration creates a Registration. ID is set by the repository on
// create.
func NewRegistration(userID string, lectureID int64, status RegistrationStatus, createdAt time.Time) *Registration {
	return &Registration{
		UserID:    userID,
		LectureID: lectureID,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// RegistrationWithLecture bundles a registration with its lecture.
type RegistrationWithLecture struct {
	Registration *Registration `json:"registration"`
	Lecture      *Lecture      `json:"lecture"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration. Inserting a (user, lecture) pair
	// that already exists fails with ErrDuplicateRegistration.
	Create(ctx context.Context, reg *Registration) error
	GetByUserAndLecture(ctx context.Context, userID string, lectureID int64) (*Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*RegistrationWithLecture, error)
	ListLectureIDsByUserID(ctx context.Context, userID string) ([]int64, error)
}

// ReservationService decides registration attempts. Reserve executes as a
// single isolated transaction serialized per lecture: it resolves the user,
// locks the lecture row, evaluates capacity and start time, then commits
// exactly one APPROVED or REJECTED registration. Capacity exhaustion and
// past-due lectures are not errors; they produce a REJECTED registration.
type ReservationService interface {
	Reserve(ctx context.Context, userID string, lectureID int64) (*Registration, error)
}
