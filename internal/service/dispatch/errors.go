package dispatch

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidPayModel       = errors.New("invalid pay model")
	ErrInvalidLocation       = errors.New("coordinates out of range")

	ErrRiderNotFound = errors.New("rider not found")
	ErrConflict      = errors.New("resource already exists")

	// ErrRiderUnavailable — райдер уже зарезервирован конкурентным
	// назначением либо помечен недоступным.
	ErrRiderUnavailable = errors.New("rider is not available for assignment")
	ErrRiderOffline     = errors.New("rider is offline")

	ErrActiveOrderInProgress = errors.New("rider already has an active order")
)
