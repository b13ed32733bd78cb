package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"speciallecture/internal/domain"
)

type reservationService struct {
	tx  domain.Transactor
	now func() time.Time
}

// NewReservationService creates the reservation coordinator. All state
// lives in the store; correctness under concurrency comes from the
// transaction and row lock provided by the Transactor.
func NewReservationService(tx domain.Transactor) domain.ReservationService {
	return &reservationService{
		tx:  tx,
		now: time.Now,
	}
}

// Reserve decides one (user, lecture) registration attempt inside a single
// transaction. The FOR UPDATE read of the lecture row serializes every
// concurrent attempt on the same lecture, so the fill count each attempt
// observes is the committed truth: acceptance order is commit order.
// Attempts on different lectures proceed in parallel.
//
// A full or already-started lecture yields a REJECTED registration, not an
// error; the lecture is closed on the first such attempt. A second attempt
// by the same user fails with ErrDuplicateRegistration and rolls the whole
// transaction back, leaving the fill count untouched.
func (s *reservationService) Reserve(ctx context.Context, userID string, lectureID int64) (*domain.Registration, error) {
	var reg *domain.Registration
	err := s.tx.WithinTx(ctx, func(r domain.TxRepositories) error {
		user, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("get user: %w", err)
		}

		lecture, err := r.Lectures.GetByIDForUpdate(ctx, lectureID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrLectureNotFound
			}
			return fmt.Errorf("lock lecture: %w", err)
		}

		now := s.now()
		status := domain.RegistrationStatusApproved
		if lecture.IsFull() || lecture.HasStarted(now) {
			status = domain.RegistrationStatusRejected
			// OPEN -> CLOSED is monotonic; skip the write when a previous
			// rejection already closed the lecture.
			if lecture.Status != domain.LectureStatusClosed {
				if err := r.Lectures.SetStatus(ctx, lecture.ID, domain.LectureStatusClosed); err != nil {
					return fmt.Errorf("close lecture: %w", err)
				}
			}
		} else {
			if err := r.Lectures.IncrementParticipants(ctx, lecture.ID); err != nil {
				return fmt.Errorf("increment participants: %w", err)
			}
		}

		reg = domain.NewRegistration(user.ID, lecture.ID, status, now)
		if err := r.Registrations.Create(ctx, reg); err != nil {
			if errors.Is(err, domain.ErrDuplicateRegistration) {
				return domain.ErrDuplicateRegistration
			}
			return fmt.Errorf("create registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}
