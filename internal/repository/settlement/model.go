package settlement

import "time"

type SettlementDB struct {
	ID              int64
	EntityType      string
	EntityID        int64
	PeriodStart     time.Time
	PeriodEnd       time.Time
	GrossSales      int64
	TotalDeliveries int64
	NetPayout       int64
	Status          string
	PaidAt          *time.Time
	CreatedAt       time.Time
}
