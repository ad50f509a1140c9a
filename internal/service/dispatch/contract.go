//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"deliverycore/internal/entities"
)

type RiderRepository interface {
	Create(ctx context.Context, riderModify entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)

	// SetOnline при уходе со смены срабатывает условно: только если за
	// райдером нет активного заказа. Ноль затронутых строк — отказ.
	SetOnline(ctx context.Context, riderID int64, online bool, at time.Time) (*entities.Rider, error)
	UpdateLocation(ctx context.Context, riderID int64, lat, lng float64, at time.Time) error
}

type OrderService interface {
	Transition(ctx context.Context, code string, target entities.OrderStatusType, actor entities.ActorRole, riderID *int64) (*entities.Order, error)
}

type ZoneRepository interface {
	GetActiveByCity(ctx context.Context, cityID int64) ([]entities.DeliveryZone, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
