package zone

import "time"

type DeliveryZoneDB struct {
	ID        int64
	CityID    int64
	Name      string
	Polygon   []byte
	BaseFee   int64
	PerKmFee  int64
	MinFee    int64
	MaxFee    int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
