//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=penalty_post_test
package penalty_post

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
	RecordAbuseSignal(ctx context.Context, phone, reason string, instantBan bool) (*entities.CustomerPenalty, error)
	SetLevel(ctx context.Context, phone string, level entities.PenaltyLevelType, actor entities.ActorRole) (*entities.CustomerPenalty, error)
}
