package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"speciallecture/internal/domain"
)

type mockLecturerRepo struct {
	lecturers map[int64]*domain.Lecturer
	nextID    int64
}

func (m *mockLecturerRepo) Create(ctx context.Context, l *domain.Lecturer) error {
	m.nextID++
	l.ID = m.nextID
	if m.lecturers == nil {
		m.lecturers = make(map[int64]*domain.Lecturer)
	}
	m.lecturers[l.ID] = l
	return nil
}

func (m *mockLecturerRepo) GetByID(ctx context.Context, id int64) (*domain.Lecturer, error) {
	l, ok := m.lecturers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func TestCreateLecture(t *testing.T) {
	ctx := context.Background()
	future := testNow.Add(48 * time.Hour)

	tests := []struct {
		name            string
		title           string
		lecturerID      int64
		startsAt        time.Time
		maxParticipants int
		wantErr         error
		wantMax         int
	}{
		{
			name:            "success",
			title:           "Distributed Systems",
			lecturerID:      1,
			startsAt:        future,
			maxParticipants: 50,
			wantMax:         50,
		},
		{
			name:       "zero capacity gets the default",
			title:      "Database Internals",
			lecturerID: 1,
			startsAt:   future,
			wantMax:    domain.DefaultMaxParticipants,
		},
		{
			name:       "blank title",
			title:      "   ",
			lecturerID: 1,
			startsAt:   future,
			wantErr:    domain.ErrInvalidInput,
		},
		{
			name:            "negative capacity",
			title:           "Distributed Systems",
			lecturerID:      1,
			startsAt:        future,
			maxParticipants: -1,
			wantErr:         domain.ErrInvalidInput,
		},
		{
			name:       "start time in the past",
			title:      "Distributed Systems",
			lecturerID: 1,
			startsAt:   testNow.Add(-time.Hour),
			wantErr:    domain.ErrInvalidInput,
		},
		{
			name:       "unknown lecturer",
			title:      "Distributed Systems",
			lecturerID: 99,
			startsAt:   future,
			wantErr:    domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lecturers := &mockLecturerRepo{
				lecturers: map[int64]*domain.Lecturer{1: {ID: 1, Name: "Dr. Hong"}},
			}
			svc := &catalogService{
				userRepo:     &mockUserRepo{},
				lecturerRepo: lecturers,
				lectureRepo:  &mockLectureRepo{},
				now:          func() time.Time { return testNow },
			}

			lecture, err := svc.CreateLecture(ctx, tt.title, tt.lecturerID, tt.startsAt, tt.maxParticipants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lecture.MaxParticipants != tt.wantMax {
				t.Fatalf("expected capacity %d, got %d", tt.wantMax, lecture.MaxParticipants)
			}
			if lecture.Status != domain.LectureStatusOpen {
				t.Fatalf("new lecture must be OPEN, got %s", lecture.Status)
			}
			if lecture.CurrentParticipants != 0 {
				t.Fatalf("new lecture must start empty, got %d", lecture.CurrentParticipants)
			}
		})
	}
}

func TestCreateLecturer(t *testing.T) {
	ctx := context.Background()
	svc := &catalogService{
		userRepo:     &mockUserRepo{},
		lecturerRepo: &mockLecturerRepo{},
		lectureRepo:  &mockLectureRepo{},
		now:          func() time.Time { return testNow },
	}

	lecturer, err := svc.CreateLecturer(ctx, "Dr. Hong", "distributed systems")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lecturer.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	_, err = svc.CreateLecturer(ctx, "  ", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc := &catalogService{
		userRepo:     &mockUserRepo{users: map[string]*domain.User{}},
		lecturerRepo: &mockLecturerRepo{},
		lectureRepo:  &mockLectureRepo{},
		now:          func() time.Time { return testNow },
	}

	user, err := svc.CreateUser(ctx, "efforthye", "Hyerin Park")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "efforthye" {
		t.Fatalf("expected id efforthye, got %s", user.ID)
	}

	_, err = svc.CreateUser(ctx, "efforthye", "Hyerin Park")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	_, err = svc.CreateUser(ctx, "", "Hyerin Park")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
