package penalty

import "time"

type CustomerPenaltyDB struct {
	Phone          string
	Level          string
	TotalPenalties int64
	BannedUntil    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PenaltyRecordDB struct {
	ID        int64
	Phone     string
	Reason    string
	CreatedAt time.Time
}
