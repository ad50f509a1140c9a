package entities

import "time"

// CustomerPenalty — уровень доверия клиента по номеру телефона.
// Инвариант: BannedUntil != nil => Level == PenaltyBanned.
type CustomerPenalty struct {
	Phone          string
	Level          PenaltyLevelType
	TotalPenalties int64
	BannedUntil    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PenaltyLevelType string

const (
	PenaltyNone       PenaltyLevelType = "none"
	PenaltyWarning    PenaltyLevelType = "warning"
	PenaltyRestricted PenaltyLevelType = "restricted"
	PenaltyBanned     PenaltyLevelType = "banned"
)

func (t PenaltyLevelType) String() string {
	return string(t)
}

// PenaltyRecord — одна строка истории нарушений.
type PenaltyRecord struct {
	ID        int64
	Phone     string
	Reason    string
	CreatedAt time.Time
}
