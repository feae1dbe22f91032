package scheduler

import "errors"

// Validation sentinels. The presentation layer reports all of these through a
// single generic invalid-input message; the distinct values exist so callers
// and tests can tell the rules apart with errors.Is.
var (
	// ErrInvalidInterval indicates the candidate end time is not after the
	// candidate start time.
	ErrInvalidInterval = errors.New("end time must be after start time")

	// ErrConflict indicates the candidate interval double-books a selected
	// participant.
	ErrConflict = errors.New("scheduling conflict")

	// ErrTitleRequired indicates a create request without a title.
	ErrTitleRequired = errors.New("title required")

	// ErrNotFound indicates the appointment does not exist or is not owned
	// by the requesting user.
	ErrNotFound = errors.New("appointment not found")

	// ErrUserNotFound indicates a referenced user is not registered.
	ErrUserNotFound = errors.New("user not registered")

	// ErrUserExists indicates a registration with an already-taken name.
	ErrUserExists = errors.New("user already registered")

	// ErrNameRequired indicates a registration with an empty name.
	ErrNameRequired = errors.New("user name required")
)
