package domain

import "errors"

// ErrNotFound is returned by repositories when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrUserNotFound is returned by the reservation path when the requesting
// user does not exist. Non-retryable.
var ErrUserNotFound = errors.New("user not found")

// ErrLectureNotFound is returned by the reservation path when the target
// lecture does not exist. Non-retryable.
var ErrLectureNotFound = errors.New("lecture not found")

// ErrDuplicateRegistration is returned when a (user, lecture) pair already
// has a registration row. The uniqueness constraint in the registrations
// table is the final arbiter; the whole transaction rolls back.
var ErrDuplicateRegistration = errors.New("already registered for this lecture")

// ErrTxConflict is returned on lock timeouts, deadlocks, and serialization
// failures. The caller may retry the whole Reserve call.
var ErrTxConflict = errors.New("transaction conflict")

// ErrStoreUnavailable is returned when the database cannot be reached.
// Retryable.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrAlreadyExists is returned when creating an entity whose identity is
// already taken.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidInput is returned for validation failures.
var ErrInvalidInput = errors.New("invalid input")
