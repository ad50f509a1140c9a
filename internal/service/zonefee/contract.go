//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zonefee_test
package zonefee

import (
	"context"

	"deliverycore/internal/entities"
)

type ZoneRepository interface {
	GetActiveByCity(ctx context.Context, cityID int64) ([]entities.DeliveryZone, error)
	Create(ctx context.Context, zone entities.DeliveryZone) (int64, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
