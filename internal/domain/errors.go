package domain

import "errors"

// Sentinel errors shared by repositories and usecases
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrReservationOverlap = errors.New("reservation overlaps an existing reservation for this room")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReferenceNotFound  = errors.New("referenced record does not exist")
)
