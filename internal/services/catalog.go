package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"speciallecture/internal/domain"
)

type catalogService struct {
	userRepo     domain.UserRepository
	lecturerRepo domain.LecturerRepository
	lectureRepo  domain.LectureRepository
	now          func() time.Time
}

// NewCatalogService creates the administrative service for users,
// lecturers, and lectures.
func NewCatalogService(
	userRepo domain.UserRepository,
	lecturerRepo domain.LecturerRepository,
	lectureRepo domain.LectureRepository,
) domain.CatalogService {
	return &catalogService{
		userRepo:     userRepo,
		lecturerRepo: lecturerRepo,
		lectureRepo:  lectureRepo,
		now:          time.Now,
	}
}

func (s *catalogService) CreateLecture(ctx context.Context, title string, lecturerID int64, startsAt time.Time, maxParticipants int) (*domain.Lecture, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if maxParticipants < 0 {
		return nil, fmt.Errorf("%w: max_participants must not be negative", domain.ErrInvalidInput)
	}
	if maxParticipants == 0 {
		maxParticipants = domain.DefaultMaxParticipants
	}
	now := s.now()
	if !startsAt.After(now) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrInvalidInput)
	}

	if _, err := s.lecturerRepo.GetByID(ctx, lecturerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get lecturer: %w", err)
	}

	lecture := domain.NewLecture(title, lecturerID, startsAt, maxParticipants, now)
	if err := s.lectureRepo.Create(ctx, lecture); err != nil {
		return nil, fmt.Errorf("create lecture: %w", err)
	}
	return lecture, nil
}

func (s *catalogService) CreateLecturer(ctx context.Context, name, description string) (*domain.Lecturer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	lecturer := domain.NewLecturer(name, description, s.now())
	if err := s.lecturerRepo.Create(ctx, lecturer); err != nil {
		return nil, fmt.Errorf("create lecturer: %w", err)
	}
	return lecturer, nil
}

func (s *catalogService) CreateUser(ctx context.Context, userID, name string) (*domain.User, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	user := domain.NewUser(userID, name, s.now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
