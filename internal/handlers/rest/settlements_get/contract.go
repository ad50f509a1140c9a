//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlements_get_test
package settlements_get

import (
	"context"

	"deliverycore/internal/entities"
	"deliverycore/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	List(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.Settlement, error)
}
