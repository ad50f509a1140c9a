package penalty

import (
	"deliverycore/internal/entities"
)

func ToDomain(p *CustomerPenaltyDB) *entities.CustomerPenalty {
	if p == nil {
		return nil
	}

	return &entities.CustomerPenalty{
		Phone:          p.Phone,
		Level:          entities.PenaltyLevelType(p.Level),
		TotalPenalties: p.TotalPenalties,
		BannedUntil:    p.BannedUntil,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func RecordToDomain(r *PenaltyRecordDB) *entities.PenaltyRecord {
	if r == nil {
		return nil
	}

	return &entities.PenaltyRecord{
		ID:        r.ID,
		Phone:     r.Phone,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}

func RecordToDomainList(records []PenaltyRecordDB) []entities.PenaltyRecord {
	if len(records) == 0 {
		return []entities.PenaltyRecord{}
	}

	result := make([]entities.PenaltyRecord, len(records))
	for i, record := range records {
		result[i] = *RecordToDomain(&record)
	}
	return result
}
