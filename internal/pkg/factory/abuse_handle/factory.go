package abuse_handle

import (
	"context"
	"fmt"

	"deliverycore/internal/entities"
)

//go:generate mockgen -source=factory.go -destination=./factory_mocks_test.go -package=abuse_handle_test

type PenaltyService interface {
	RecordAbuseSignal(ctx context.Context, phone, reason string, instantBan bool) (*entities.CustomerPenalty, error)
}

type ExecuteFn func(ctx context.Context, event entities.OrderStatusChangedEvent) error

var ErrUndefinedStatus = fmt.Errorf("no abuse handler for status")

// SignalHandlerFactory разбирает события смены статуса заказа и переводит
// срывы доставки в сигналы трекера штрафов. Отмена до назначения курьера
// сигналом не считается; отклонение ресторана считается всегда, оно
// происходит только до назначения.
type SignalHandlerFactory struct {
	penaltyService PenaltyService
}

func NewSignalHandlerFactory(penaltyService PenaltyService) *SignalHandlerFactory {
	return &SignalHandlerFactory{
		penaltyService: penaltyService,
	}
}

func (f *SignalHandlerFactory) GetHandler(status entities.OrderStatusType) (ExecuteFn, error) {
	switch status {
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderRejected:
		return f.rejectedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}
}

func (f *SignalHandlerFactory) cancelledHandler(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	if !isAfterAssignment(event.PrevStatus) {
		return nil
	}

	reason := fmt.Sprintf("order %s cancelled by %s after rider assignment", event.OrderCode, event.Actor)
	_, err := f.penaltyService.RecordAbuseSignal(ctx, event.CustomerPhone, reason, false)
	if err != nil {
		return fmt.Errorf("record cancellation signal for order %s: %w", event.OrderCode, err)
	}
	return nil
}

func (f *SignalHandlerFactory) rejectedHandler(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	reason := fmt.Sprintf("order %s rejected by restaurant", event.OrderCode)
	_, err := f.penaltyService.RecordAbuseSignal(ctx, event.CustomerPhone, reason, false)
	if err != nil {
		return fmt.Errorf("record rejection signal for order %s: %w", event.OrderCode, err)
	}
	return nil
}

func isAfterAssignment(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderAssignedRider, entities.OrderPickedUp, entities.OrderInTransit:
		return true
	default:
		return false
	}
}
