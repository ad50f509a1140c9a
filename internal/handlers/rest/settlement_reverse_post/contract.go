//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_reverse_post_test
package settlement_reverse_post

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
	ReversePaid(ctx context.Context, id int64, actor entities.ActorRole) (*entities.Settlement, error)
}
