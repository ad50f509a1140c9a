package entities

import "time"

// LedgerEntry — неизменяемая запись изменения баланса.
// Инвариант: BalanceAfter == BalanceBefore + Amount, записи одной сущности
// образуют непрерывную цепочку (BalanceAfter[i] == BalanceBefore[i+1]).
type LedgerEntry struct {
	ID              int64
	EntityType      LedgerEntityType
	EntityID        int64
	TransactionType LedgerTransactionType
	Amount          int64
	BalanceBefore   int64
	BalanceAfter    int64
	OrderCode       *string
	IdempotencyKey  *string
	Notes           string
	CreatedAt       time.Time
}

type LedgerEntityType string

const (
	EntityRider      LedgerEntityType = "rider"
	EntityRestaurant LedgerEntityType = "restaurant"
)

func (t LedgerEntityType) String() string {
	return string(t)
}

type LedgerTransactionType string

const (
	TxEarn       LedgerTransactionType = "earn"
	TxLiquidate  LedgerTransactionType = "liquidate"
	TxAdjustment LedgerTransactionType = "adjustment"
	TxRecharge   LedgerTransactionType = "recharge"
)

func (t LedgerTransactionType) String() string {
	return string(t)
}

type LedgerPost struct {
	EntityType      LedgerEntityType
	EntityID        int64
	TransactionType LedgerTransactionType
	Amount          int64
	OrderCode       *string
	IdempotencyKey  *string
	Notes           string
	AllowNegative   bool
}
