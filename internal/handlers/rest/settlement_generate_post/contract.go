//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_generate_post_test
package settlement_generate_post

import (
	"context"
	"time"

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
	Generate(ctx context.Context, entityType entities.LedgerEntityType, entityID int64, from, to time.Time) (*entities.Settlement, error)
}
