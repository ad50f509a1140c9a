package settlement

import "errors"

var (
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrInvalidPeriod     = errors.New("period start must precede period end")

	ErrSettlementNotFound = errors.New("settlement not found")
	ErrDuplicatePeriod    = errors.New("settlement period overlaps an existing one")
	ErrAlreadyPaid        = errors.New("settlement is already paid")
	ErrNotPaid            = errors.New("settlement is not paid")
	ErrNotAuthorized      = errors.New("actor is not authorized for reversal")
)
