//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_history_get_test
package ledger_history_get

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
	GetBalance(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) (int64, error)
	GetHistory(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.LedgerEntry, error)
}
