//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"
	"time"

	"deliverycore/internal/entities"
)

type Repository interface {
	Insert(ctx context.Context, settlement entities.Settlement) (*entities.Settlement, error)
	GetByID(ctx context.Context, id int64) (*entities.Settlement, error)
	List(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.Settlement, error)

	// HasOverlappingPeriod проверяет пересечение [from, to) с уже
	// существующими расчетами той же сущности.
	HasOverlappingPeriod(ctx context.Context, entityType entities.LedgerEntityType, entityID int64, from, to time.Time) (bool, error)

	// MarkPaid срабатывает условно (WHERE status = 'pending').
	MarkPaid(ctx context.Context, id int64, paidAt time.Time) (*entities.Settlement, error)
	// ReversePaid — явный аудируемый откат: paid -> disputed, paid_at очищается.
	ReversePaid(ctx context.Context, id int64) (*entities.Settlement, error)
}

// DeliveredAggregate — агрегат доставленных заказов сущности за период.
type DeliveredAggregate struct {
	GrossSales      int64
	PlatformFees    int64
	TotalDeliveries int64
}

type OrderAggregator interface {
	AggregateDelivered(ctx context.Context, entityType entities.LedgerEntityType, entityID int64, from, to time.Time) (*DeliveredAggregate, error)
}

type LedgerService interface {
	PostEntry(ctx context.Context, post entities.LedgerPost) (*entities.LedgerEntry, error)
	SumEarnInPeriod(ctx context.Context, entityType entities.LedgerEntityType, entityID int64, from, to time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
