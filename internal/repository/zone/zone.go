package zone

import (
	"context"
	"fmt"

	"deliverycore/internal/entities"
	zonefeeservice "deliverycore/internal/service/zonefee"
)

const zoneColumns = `id, city_id, name, polygon, base_fee, per_km_fee, min_fee, max_fee,
		is_active, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActiveByCity(ctx context.Context, cityID int64) ([]entities.DeliveryZone, error) {
	query := `SELECT ` + zoneColumns + `
		FROM delivery_zones
		WHERE city_id = $1 AND is_active
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, cityID)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getactivebycity error: %w", err)
	}
	defer rows.Close()

	zones := make([]entities.DeliveryZone, 0, 8)
	for rows.Next() {
		var zoneModel DeliveryZoneDB
		err := rows.Scan(
			&zoneModel.ID,
			&zoneModel.CityID,
			&zoneModel.Name,
			&zoneModel.Polygon,
			&zoneModel.BaseFee,
			&zoneModel.PerKmFee,
			&zoneModel.MinFee,
			&zoneModel.MaxFee,
			&zoneModel.IsActive,
			&zoneModel.CreatedAt,
			&zoneModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository getactivebycity error: %w", err)
		}

		zoneDomain, err := ToDomain(&zoneModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository getactivebycity error: %w", err)
		}
		zones = append(zones, *zoneDomain)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository getactivebycity error: %w", err)
	}

	return zones, nil
}

func (r *Repository) Create(ctx context.Context, zone entities.DeliveryZone) (int64, error) {
	raw, err := FromDomainPolygon(zone.Polygon)
	if err != nil {
		return 0, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	query := `INSERT INTO delivery_zones (city_id, name, polygon, base_fee, per_km_fee, min_fee, max_fee, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err = r.querier.QueryRow(
		ctx,
		query,
		zone.CityID,
		zone.Name,
		raw,
		zone.BaseFee,
		zone.PerKmFee,
		zone.MinFee,
		zone.MaxFee,
		zone.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected zone repository create error: %w", err)
	}

	return id, nil
}

// SetActive включает и выключает зону без удаления: тарифная история
// выключенных зон остается для ретроспективы.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE delivery_zones
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("unexpected zone repository setactive error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return zonefeeservice.ErrZoneNotFound
	}

	return nil
}
