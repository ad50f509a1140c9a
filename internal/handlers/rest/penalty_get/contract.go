//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=penalty_get_test
package penalty_get

import (
	"context"

	"deliverycore/internal/entities"
	"deliverycore/internal/service/penalty"
	"deliverycore/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetStatus(ctx context.Context, phone string) (*penalty.Status, error)
	GetHistory(ctx context.Context, phone string) ([]entities.PenaltyRecord, error)
}
