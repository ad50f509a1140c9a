package dispatch

import (
	"context"
	"fmt"
	"time"

	"deliverycore/internal/entities"
	"deliverycore/pkg/geo"
)

// Assignment — результат ручного назначения райдера на заказ.
type Assignment struct {
	RiderID    int64
	OrderCode  string
	AssignedAt time.Time
}

type Dispatch struct {
	riderRepository RiderRepository
	orderService    OrderService
	zoneRepository  ZoneRepository
	txManager       TxManager
	coverageTimeout time.Duration
}

func New(
	riderRepository RiderRepository,
	orderService OrderService,
	zoneRepository ZoneRepository,
	txManager TxManager,
	coverageTimeout time.Duration,
) *Dispatch {
	return &Dispatch{
		riderRepository: riderRepository,
		orderService:    orderService,
		zoneRepository:  zoneRepository,
		txManager:       txManager,
		coverageTimeout: coverageTimeout,
	}
}

// Assign назначает конкретного райдера на заказ. Диспетчер не выбирает
// райдера сам — только атомарно удерживает инвариант «максимум один
// активный заказ». Захват блокировки происходит внутри перехода
// assigned_rider одной транзакцией со сменой статуса.
func (d *Dispatch) Assign(ctx context.Context, orderCode string, riderID int64) (*Assignment, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	order, err := d.orderService.Transition(ctx, orderCode, entities.OrderAssignedRider, entities.ActorDispatcher, &riderID)
	if err != nil {
		assignFailedTotal.Inc()
		return nil, err
	}

	assignedAt := time.Now().UTC()
	if order.AssignedAt != nil {
		assignedAt = *order.AssignedAt
	}

	return &Assignment{
		RiderID:    riderID,
		OrderCode:  order.Code,
		AssignedAt: assignedAt,
	}, nil
}

// ToggleOnline переключает смену. Уход в оффлайн с активным заказом
// отклоняется. При выходе на линию проверяется покрытие последней известной
// позиции активными зонами города — мягкое предупреждение, не блокирует.
func (d *Dispatch) ToggleOnline(ctx context.Context, riderID int64, online bool) (*entities.RiderToggleResult, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	var rider *entities.Rider
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.riderRepository.GetByID(ctx, riderID)
		if err != nil {
			return fmt.Errorf("get rider: %w", err)
		}

		if !online && current.CurrentOrder != nil {
			return ErrActiveOrderInProgress
		}

		rider, err = d.riderRepository.SetOnline(ctx, riderID, online, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("set online: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &entities.RiderToggleResult{
		RiderID:     rider.ID,
		IsOnline:    rider.IsOnline,
		IsAvailable: rider.IsAvailable,
	}

	if online {
		result.OutOfCoverage = d.isOutOfCoverage(ctx, rider)
	}

	return result, nil
}

func (d *Dispatch) UpdateLocation(ctx context.Context, riderID int64, lat, lng float64) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}
	if !(geo.Point{Lat: lat, Lng: lng}).Valid() {
		return ErrInvalidLocation
	}

	err := d.riderRepository.UpdateLocation(ctx, riderID, lat, lng, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

func (d *Dispatch) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil ||
		riderModify.Phone == nil ||
		riderModify.CityID == nil ||
		riderModify.PayModel == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*riderModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidPayModel(riderModify.PayModel.String()) {
		return 0, ErrInvalidPayModel
	}

	id, err := d.riderRepository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}
	return id, nil
}

func (d *Dispatch) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidRiderID
	}

	rider, err := d.riderRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return rider, nil
}

// isOutOfCoverage — best effort: таймаут или ошибка поиска зон трактуются
// как отсутствие покрытия (предупреждение), а не как отказ операции.
func (d *Dispatch) isOutOfCoverage(ctx context.Context, rider *entities.Rider) bool {
	if rider.Lat == nil || rider.Lng == nil {
		return true
	}

	lookupCtx, cancel := context.WithTimeout(ctx, d.coverageTimeout)
	defer cancel()

	zones, err := d.zoneRepository.GetActiveByCity(lookupCtx, rider.CityID)
	if err != nil {
		return true
	}

	point := geo.Point{Lat: *rider.Lat, Lng: *rider.Lng}
	for _, zone := range zones {
		if geo.Contains(zone.Polygon, point) {
			return false
		}
	}
	return true
}
