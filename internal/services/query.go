package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"speciallecture/internal/domain"
)

type lectureQueryService struct {
	userRepo         domain.UserRepository
	lectureRepo      domain.LectureRepository
	registrationRepo domain.RegistrationRepository
	now              func() time.Time
}

// NewLectureQueryService creates the read-only query service. It reads
// outside reservation transactions and takes no locks.
func NewLectureQueryService(
	userRepo domain.UserRepository,
	lectureRepo domain.LectureRepository,
	registrationRepo domain.RegistrationRepository,
) domain.LectureQueryService {
	return &lectureQueryService{
		userRepo:         userRepo,
		lectureRepo:      lectureRepo,
		registrationRepo: registrationRepo,
		now:              time.Now,
	}
}

func (s *lectureQueryService) ListAvailableLectures(ctx context.Context) ([]*domain.LectureWithLecturer, error) {
	lectures, err := s.lectureRepo.ListAvailable(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list available lectures: %w", err)
	}
	return lectures, nil
}

func (s *lectureQueryService) ListAvailableLecturesForUser(ctx context.Context, userID string) ([]*domain.LectureWithLecturer, error) {
	// Listing degrades gracefully: an unknown user gets an empty result.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.LectureWithLecturer{}, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	registeredIDs, err := s.registrationRepo.ListLectureIDsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered lecture ids: %w", err)
	}

	var lectures []*domain.LectureWithLecturer
	if len(registeredIDs) == 0 {
		lectures, err = s.lectureRepo.ListAvailable(ctx, s.now())
	} else {
		lectures, err = s.lectureRepo.ListAvailableExcluding(ctx, s.now(), registeredIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("list available lectures: %w", err)
	}
	return lectures, nil
}

func (s *lectureQueryService) ListUserRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithLecture, error) {
	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *lectureQueryService) GetRegistration(ctx context.Context, userID string, lectureID int64) (*domain.Registration, error) {
	reg, err := s.registrationRepo.GetByUserAndLecture(ctx, userID, lectureID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}
