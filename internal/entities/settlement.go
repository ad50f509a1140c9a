package entities

import "time"

type Settlement struct {
	ID              int64
	EntityType      LedgerEntityType
	EntityID        int64
	PeriodStart     time.Time
	PeriodEnd       time.Time
	GrossSales      int64
	TotalDeliveries int64
	NetPayout       int64
	Status          SettlementStatusType
	PaidAt          *time.Time
	CreatedAt       time.Time
}

type SettlementStatusType string

const (
	SettlementPending  SettlementStatusType = "pending"
	SettlementPaid     SettlementStatusType = "paid"
	SettlementDisputed SettlementStatusType = "disputed"
)

func (t SettlementStatusType) String() string {
	return string(t)
}
