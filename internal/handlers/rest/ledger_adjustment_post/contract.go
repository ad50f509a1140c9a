//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_adjustment_post_test
package ledger_adjustment_post

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
	PostEntry(ctx context.Context, post entities.LedgerPost) (*entities.LedgerEntry, error)
}
