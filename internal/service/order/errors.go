package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderCode      = errors.New("invalid order code")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidActor          = errors.New("invalid actor role")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidGeoPoint       = errors.New("coordinates out of range")
	ErrInvalidAmounts        = errors.New("invalid monetary amounts")

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("transition is not allowed from current status")
	ErrOrderFinalized     = errors.New("order is in terminal status")
	ErrRoleNotAllowed     = errors.New("actor role is not allowed for this transition")
	ErrRiderRequired      = errors.New("rider id is required for assignment")
	ErrCustomerBlocked    = errors.New("customer is blocked by penalty level")
	ErrOrderCodeCollision = errors.New("order code already exists")

	// ErrConflict — проигранная конкурентная запись; операция ретраится
	// целиком от свежего чтения ограниченное число раз.
	ErrConflict = errors.New("concurrent modification conflict")
)
