package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"deliverycore/internal/entities"
)

const (
	codeLength = 6
	// без 0/O/1/I, код зачитывают по телефону
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	createCodeAttempts = 3
)

type Service struct {
	repository    Repository
	riderLocker   RiderLocker
	ledgerService LedgerService
	feeService    FeeService
	penaltyGate   PenaltyGate
	publisher     EventPublisher
	txManager     TxManager
	retrier       Retrier
}

func New(
	repository Repository,
	riderLocker RiderLocker,
	ledgerService LedgerService,
	feeService FeeService,
	penaltyGate PenaltyGate,
	publisher EventPublisher,
	txManager TxManager,
	retrier Retrier,
) *Service {
	return &Service{
		repository:    repository,
		riderLocker:   riderLocker,
		ledgerService: ledgerService,
		feeService:    feeService,
		penaltyGate:   penaltyGate,
		publisher:     publisher,
		txManager:     txManager,
		retrier:       retrier,
	}
}

// CreateOrder создает заказ в статусе cart с посчитанной стоимостью доставки.
// Заблокированный по уровню штрафов клиент получает отказ до любых записей.
func (s *Service) CreateOrder(ctx context.Context, create entities.OrderCreate) (*entities.Order, error) {
	if err := validateCreate(&create); err != nil {
		return nil, err
	}

	allowed, err := s.penaltyGate.CheckAllowed(ctx, create.CustomerPhone)
	if err != nil {
		return nil, fmt.Errorf("penalty check: %w", err)
	}
	if !allowed {
		return nil, ErrCustomerBlocked
	}

	deliveryFee, err := s.feeService.ComputeFee(ctx, create.CityID, create.Pickup, create.Dropoff)
	if err != nil {
		return nil, fmt.Errorf("compute delivery fee: %w", err)
	}

	now := time.Now().UTC()
	order := entities.Order{
		Status:        entities.OrderCart,
		CityID:        create.CityID,
		RestaurantID:  create.RestaurantID,
		CustomerPhone: create.CustomerPhone,
		CustomerName:  create.CustomerName,
		Subtotal:      create.Subtotal,
		DeliveryFee:   deliveryFee,
		ServiceFee:    create.ServiceFee,
		Discount:      create.Discount,
		Total:         create.Subtotal + deliveryFee + create.ServiceFee - create.Discount,
		PaymentMethod: create.PaymentMethod,
		PaymentStatus: entities.PaymentPending,
		RiderBonus:    create.RiderBonus,
		Pickup:        create.Pickup,
		Dropoff:       create.Dropoff,
		CreatedAt:     now,
	}

	// код человекочитаемый и короткий, коллизии возможны — пробуем еще раз
	var created *entities.Order
	for attempt := 0; attempt < createCodeAttempts; attempt++ {
		order.Code = newOrderCode()
		created, err = s.repository.Create(ctx, order)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrOrderCodeCollision) {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}
	return nil, fmt.Errorf("create order: %w", ErrOrderCodeCollision)
}

// Transition переводит заказ в target от имени actor. Переходы одного заказа
// сериализованы: условный UPDATE по текущему статусу внутри serializable
// транзакции, проигравший конкурент получает ErrConflict и ретрай от свежего
// чтения.
func (s *Service) Transition(
	ctx context.Context,
	code string,
	target entities.OrderStatusType,
	actor entities.ActorRole,
	riderID *int64,
) (*entities.Order, error) {
	if !isValidOrderCode(code) {
		return nil, ErrInvalidOrderCode
	}
	if !isValidStatus(target.String()) {
		return nil, ErrInvalidStatus
	}
	if !isValidActor(actor.String()) {
		return nil, ErrInvalidActor
	}

	var (
		result *entities.Order
		event  entities.OrderStatusChangedEvent
	)

	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.repository.GetByCode(ctx, code)
			if err != nil {
				return fmt.Errorf("get order: %w", err)
			}

			if current.Status.IsTerminal() {
				return ErrOrderFinalized
			}
			if !isSuccessor(current.Status, target) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
			}
			if !isRoleAllowed(target, actor) {
				return fmt.Errorf("%w: %s -> %s by %s", ErrRoleNotAllowed, current.Status, target, actor)
			}

			now := time.Now().UTC()

			var assignRider *int64
			if target == entities.OrderAssignedRider {
				if riderID == nil {
					return ErrRiderRequired
				}
				if err := s.riderLocker.Acquire(ctx, *riderID, code); err != nil {
					return fmt.Errorf("acquire rider lock: %w", err)
				}
				assignRider = riderID
			}

			updated, err := s.repository.UpdateStatus(ctx, code, current.Status, target, now, assignRider)
			if err != nil {
				return fmt.Errorf("update status: %w", err)
			}

			err = s.repository.AppendStatusHistory(ctx, entities.StatusHistoryRecord{
				OrderCode: code,
				From:      current.Status,
				To:        target,
				Actor:     actor,
				CreatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("append status history: %w", err)
			}

			if err := s.applySideEffects(ctx, current, updated); err != nil {
				return err
			}

			result = updated
			event = entities.OrderStatusChangedEvent{
				OrderCode:     code,
				Status:        target,
				PrevStatus:    current.Status,
				Actor:         actor,
				CustomerPhone: updated.CustomerPhone,
				RiderID:       updated.RiderID,
				OccurredAt:    now,
			}
			return nil
		})
	})
	if err != nil {
		transitionsTotal.WithLabelValues(target.String(), "error").Inc()
		return nil, err
	}

	transitionsTotal.WithLabelValues(target.String(), "ok").Inc()

	// Переход уже закоммичен, потерю события фиксируем метрикой,
	// откатывать заказ из-за брокера нельзя.
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		eventPublishFailedTotal.Inc()
	}

	return result, nil
}

// applySideEffects выполняет денежные и диспетчерские эффекты перехода
// внутри той же транзакции, что и смена статуса.
func (s *Service) applySideEffects(ctx context.Context, before, after *entities.Order) error {
	switch after.Status {
	case entities.OrderDelivered:
		if after.RiderID == nil {
			return nil
		}
		if _, err := s.ledgerService.PostCommission(ctx, after); err != nil {
			return fmt.Errorf("post commission: %w", err)
		}
		if err := s.riderLocker.RecordDelivery(ctx, *after.RiderID, after.Rating); err != nil {
			return fmt.Errorf("record delivery: %w", err)
		}
		if err := s.riderLocker.Release(ctx, *after.RiderID); err != nil {
			return fmt.Errorf("release rider: %w", err)
		}
	case entities.OrderCancelled, entities.OrderRejected:
		if before.RiderID == nil {
			return nil
		}
		if err := s.riderLocker.Release(ctx, *before.RiderID); err != nil {
			return fmt.Errorf("release rider: %w", err)
		}
	}
	return nil
}

func (s *Service) GetOrder(ctx context.Context, code string) (*entities.Order, []entities.StatusHistoryRecord, error) {
	if !isValidOrderCode(code) {
		return nil, nil, ErrInvalidOrderCode
	}

	order, err := s.repository.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	history, err := s.repository.GetStatusHistory(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("get status history: %w", err)
	}

	return order, history, nil
}

func validateCreate(create *entities.OrderCreate) error {
	if create.CustomerPhone == "" || create.CityID == 0 || create.RestaurantID == 0 {
		return ErrMissingRequiredFields
	}
	if !isValidPhone(create.CustomerPhone) {
		return ErrInvalidPhone
	}
	if !isValidGeoPoint(create.Pickup.Lat, create.Pickup.Lng) ||
		!isValidGeoPoint(create.Dropoff.Lat, create.Dropoff.Lng) {
		return ErrInvalidGeoPoint
	}
	if create.Subtotal <= 0 || create.ServiceFee < 0 || create.Discount < 0 || create.RiderBonus < 0 {
		return ErrInvalidAmounts
	}
	switch create.PaymentMethod {
	case entities.PaymentCash, entities.PaymentElectronic:
	default:
		return ErrMissingRequiredFields
	}
	return nil
}

func newOrderCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}
