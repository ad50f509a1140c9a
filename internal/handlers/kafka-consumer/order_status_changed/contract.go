package order_status_changed

import (
	"deliverycore/internal/entities"
	"deliverycore/internal/pkg/factory/abuse_handle"
	"deliverycore/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type SignalHandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (abuse_handle.ExecuteFn, error)
}
