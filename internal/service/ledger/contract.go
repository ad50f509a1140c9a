//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"
	"time"

	"deliverycore/internal/entities"
)

type Repository interface {
	// Append вставляет запись; нарушение уникальности idempotency_key
	// маппится в ErrDuplicatePosting.
	Append(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error)

	GetLastEntry(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) (*entities.LedgerEntry, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entities.LedgerEntry, error)
	ListByEntity(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.LedgerEntry, error)
	SumEarnInPeriod(ctx context.Context, entityType entities.LedgerEntityType, entityID int64, from, to time.Time) (int64, error)
	CountChainBreaks(ctx context.Context) (int64, error)
}

type RiderProvider interface {
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
