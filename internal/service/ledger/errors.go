package ledger

import "errors"

var (
	ErrInvalidEntityType      = errors.New("invalid entity type")
	ErrInvalidEntityID        = errors.New("invalid entity id")
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	ErrNoOpTransaction     = errors.New("zero amount transaction")
	ErrInsufficientBalance = errors.New("liquidation would drive balance negative")
	ErrEntryNotFound       = errors.New("ledger entry not found")

	// ErrDuplicatePosting — повторная проводка с тем же ключом
	// идемпотентности; сервис возвращает уже существующую запись.
	ErrDuplicatePosting = errors.New("duplicate posting")
)
