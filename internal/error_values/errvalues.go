package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid auth token")

	ErrValidation         = errors.New("invalid medication definition")
	ErrMedicationNotFound = errors.New("medication doesn't exist")
	// Returned when the caller tries to touch another user's data.
	ErrWrongOwner = errors.New("resource has different owner")

	ErrInvalidStatus = errors.New("dose status must be Taken or Missed")
	// A dose cannot be resolved before its scheduled instant arrives.
	ErrFutureMark        = errors.New("scheduled time hasn't arrived yet")
	ErrDoseEventNotFound = errors.New("dose event doesn't exist")
)
