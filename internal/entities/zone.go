package entities

import (
	"time"

	"github.com/paulmach/orb"
)

// DeliveryZone — географический полигон со своими тарифами.
// Все суммы в минорных единицах валюты.
type DeliveryZone struct {
	ID        int64
	CityID    int64
	Name      string
	Polygon   orb.Polygon
	BaseFee   int64
	PerKmFee  int64
	MinFee    int64
	MaxFee    int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
