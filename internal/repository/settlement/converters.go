package settlement

import (
	"deliverycore/internal/entities"
)

func ToDomain(s *SettlementDB) *entities.Settlement {
	if s == nil {
		return nil
	}

	return &entities.Settlement{
		ID:              s.ID,
		EntityType:      entities.LedgerEntityType(s.EntityType),
		EntityID:        s.EntityID,
		PeriodStart:     s.PeriodStart,
		PeriodEnd:       s.PeriodEnd,
		GrossSales:      s.GrossSales,
		TotalDeliveries: s.TotalDeliveries,
		NetPayout:       s.NetPayout,
		Status:          entities.SettlementStatusType(s.Status),
		PaidAt:          s.PaidAt,
		CreatedAt:       s.CreatedAt,
	}
}

func ToDomainList(settlements []SettlementDB) []entities.Settlement {
	if len(settlements) == 0 {
		return []entities.Settlement{}
	}

	result := make([]entities.Settlement, len(settlements))
	for i, settlement := range settlements {
		result[i] = *ToDomain(&settlement)
	}
	return result
}
