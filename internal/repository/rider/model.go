package rider

import "time"

type RiderDB struct {
	ID               int64
	Name             string
	Phone            string
	CityID           int64
	IsOnline         bool
	IsAvailable      bool
	CurrentOrderCode *string
	Lat              *float64
	Lng              *float64
	LocationAt       *time.Time
	PayModel         string
	CommissionRate   float64
	ShiftStartedAt   *time.Time
	TotalDeliveries  int64
	AvgRating        float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RiderModifyDB struct {
	ID             *int64
	Name           *string
	Phone          *string
	CityID         *int64
	PayModel       *string
	CommissionRate *float64
	Lat            *float64
	Lng            *float64
}
