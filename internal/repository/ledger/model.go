package ledger

import "time"

type LedgerEntryDB struct {
	ID              int64
	EntityType      string
	EntityID        int64
	TransactionType string
	Amount          int64
	BalanceBefore   int64
	BalanceAfter    int64
	OrderCode       *string
	IdempotencyKey  *string
	Notes           string
	CreatedAt       time.Time
}
