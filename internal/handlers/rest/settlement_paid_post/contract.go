//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_paid_post_test
package settlement_paid_post

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
	MarkPaid(ctx context.Context, id int64) (*entities.Settlement, error)
}
