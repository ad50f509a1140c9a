//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_toggle_post_test
package rider_toggle_post

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
	ToggleOnline(ctx context.Context, riderID int64, online bool) (*entities.RiderToggleResult, error)
}
