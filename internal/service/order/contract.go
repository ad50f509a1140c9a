//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"deliverycore/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByCode(ctx context.Context, code string) (*entities.Order, error)

	// UpdateStatus меняет статус условно (WHERE status = from) и ставит
	// таймстемп целевого статуса. Ноль затронутых строк — проигранная гонка.
	UpdateStatus(ctx context.Context, code string, from, to entities.OrderStatusType, at time.Time, riderID *int64) (*entities.Order, error)

	AppendStatusHistory(ctx context.Context, record entities.StatusHistoryRecord) error
	GetStatusHistory(ctx context.Context, code string) ([]entities.StatusHistoryRecord, error)
}

// RiderLocker — единственный путь записи полей доступности райдера.
type RiderLocker interface {
	Acquire(ctx context.Context, riderID int64, orderCode string) error
	Release(ctx context.Context, riderID int64) error
	RecordDelivery(ctx context.Context, riderID int64, rating *int16) error
}

type LedgerService interface {
	PostCommission(ctx context.Context, order *entities.Order) (*entities.LedgerEntry, error)
}

type FeeService interface {
	ComputeFee(ctx context.Context, cityID int64, pickup, dropoff entities.GeoPoint) (int64, error)
}

type PenaltyGate interface {
	CheckAllowed(ctx context.Context, phone string) (bool, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
