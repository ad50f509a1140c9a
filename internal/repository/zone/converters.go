package zone

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"deliverycore/internal/entities"
)

// ToDomain распаковывает полигон из JSONB-колонки: orb.Polygon сериализуется
// стандартным encoding/json как вложенные массивы координат [lng, lat].
func ToDomain(z *DeliveryZoneDB) (*entities.DeliveryZone, error) {
	if z == nil {
		return nil, nil
	}

	var polygon orb.Polygon
	if len(z.Polygon) > 0 {
		if err := json.Unmarshal(z.Polygon, &polygon); err != nil {
			return nil, fmt.Errorf("unmarshal zone %d polygon: %w", z.ID, err)
		}
	}

	return &entities.DeliveryZone{
		ID:        z.ID,
		CityID:    z.CityID,
		Name:      z.Name,
		Polygon:   polygon,
		BaseFee:   z.BaseFee,
		PerKmFee:  z.PerKmFee,
		MinFee:    z.MinFee,
		MaxFee:    z.MaxFee,
		IsActive:  z.IsActive,
		CreatedAt: z.CreatedAt,
		UpdatedAt: z.UpdatedAt,
	}, nil
}

func FromDomainPolygon(polygon orb.Polygon) ([]byte, error) {
	raw, err := json.Marshal(polygon)
	if err != nil {
		return nil, fmt.Errorf("marshal polygon: %w", err)
	}
	return raw, nil
}
