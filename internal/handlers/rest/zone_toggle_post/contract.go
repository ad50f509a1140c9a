//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_toggle_post_test
package zone_toggle_post

import (
	"context"

	"deliverycore/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetZoneActive(ctx context.Context, id int64, active bool) error
}
