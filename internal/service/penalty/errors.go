package penalty

import "errors"

var (
	ErrInvalidPhone  = errors.New("invalid phone")
	ErrInvalidReason = errors.New("reason is required")
	ErrInvalidLevel  = errors.New("invalid penalty level")
	ErrNotAuthorized = errors.New("actor is not authorized for manual override")

	ErrPenaltyNotFound = errors.New("penalty record not found")
)
