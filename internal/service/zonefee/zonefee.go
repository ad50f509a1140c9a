package zonefee

import (
	"context"
	"fmt"
	"time"

	"deliverycore/internal/entities"
	"deliverycore/pkg/geo"
	"deliverycore/pkg/money"
)

type Calculator struct {
	zoneRepository ZoneRepository
	lookupTimeout  time.Duration
}

func New(zoneRepository ZoneRepository, lookupTimeout time.Duration) *Calculator {
	return &Calculator{
		zoneRepository: zoneRepository,
		lookupTimeout:  lookupTimeout,
	}
}

// ComputeFee считает стоимость доставки:
// clamp(base_fee + per_km_fee * расстояние_по_дуге, min_fee, max_fee),
// округление half-up до минорной единицы. Из пересекающихся зон берется
// зона с минимальным base_fee (при равенстве — меньший id).
func (c *Calculator) ComputeFee(ctx context.Context, cityID int64, pickup, dropoff entities.GeoPoint) (int64, error) {
	if cityID <= 0 {
		return 0, ErrInvalidCityID
	}

	pickupPoint := geo.Point{Lat: pickup.Lat, Lng: pickup.Lng}
	dropoffPoint := geo.Point{Lat: dropoff.Lat, Lng: dropoff.Lng}
	if !pickupPoint.Valid() || !dropoffPoint.Valid() {
		return 0, ErrInvalidGeoPoint
	}

	lookupCtx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	zones, err := c.zoneRepository.GetActiveByCity(lookupCtx, cityID)
	if err != nil {
		// поиск зон не должен подвешивать создание заказа
		return 0, fmt.Errorf("%w: zone lookup failed: %w", ErrNoZoneCoverage, err)
	}

	zone := pickZone(zones, dropoffPoint)
	if zone == nil {
		return 0, ErrNoZoneCoverage
	}

	distanceKm := geo.DistanceKm(pickupPoint, dropoffPoint)
	raw := money.RoundHalfUp(float64(zone.BaseFee) + float64(zone.PerKmFee)*distanceKm)

	return money.Clamp(raw, zone.MinFee, zone.MaxFee), nil
}

func pickZone(zones []entities.DeliveryZone, point geo.Point) *entities.DeliveryZone {
	var picked *entities.DeliveryZone
	for i := range zones {
		zone := &zones[i]
		if !zone.IsActive || !geo.Contains(zone.Polygon, point) {
			continue
		}
		if picked == nil ||
			zone.BaseFee < picked.BaseFee ||
			(zone.BaseFee == picked.BaseFee && zone.ID < picked.ID) {
			picked = zone
		}
	}
	return picked
}

// CreateZone добавляет зону. Полигон должен быть замкнутым кольцом минимум
// из четырех точек, тарифы неотрицательны, min_fee <= max_fee.
func (c *Calculator) CreateZone(ctx context.Context, zone entities.DeliveryZone) (int64, error) {
	if zone.CityID <= 0 {
		return 0, ErrInvalidCityID
	}
	if err := validateZone(&zone); err != nil {
		return 0, err
	}

	id, err := c.zoneRepository.Create(ctx, zone)
	if err != nil {
		return 0, fmt.Errorf("create zone: %w", err)
	}
	return id, nil
}

func (c *Calculator) SetZoneActive(ctx context.Context, id int64, active bool) error {
	if id <= 0 {
		return ErrInvalidZone
	}

	err := c.zoneRepository.SetActive(ctx, id, active)
	if err != nil {
		return fmt.Errorf("set zone active: %w", err)
	}
	return nil
}

func validateZone(zone *entities.DeliveryZone) error {
	if zone.Name == "" {
		return ErrInvalidZone
	}
	if zone.BaseFee < 0 || zone.PerKmFee < 0 || zone.MinFee < 0 {
		return ErrInvalidZone
	}
	if zone.MinFee > zone.MaxFee {
		return ErrInvalidZone
	}
	if len(zone.Polygon) == 0 {
		return ErrInvalidZone
	}
	ring := zone.Polygon[0]
	if len(ring) < 4 || !ring.Closed() {
		return ErrInvalidZone
	}
	for _, point := range ring {
		p := geo.Point{Lat: point.Lat(), Lng: point.Lon()}
		if !p.Valid() {
			return ErrInvalidGeoPoint
		}
	}
	return nil
}
