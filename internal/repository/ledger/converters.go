package ledger

import (
	"deliverycore/internal/entities"
)

func ToDomain(e *LedgerEntryDB) *entities.LedgerEntry {
	if e == nil {
		return nil
	}

	return &entities.LedgerEntry{
		ID:              e.ID,
		EntityType:      entities.LedgerEntityType(e.EntityType),
		EntityID:        e.EntityID,
		TransactionType: entities.LedgerTransactionType(e.TransactionType),
		Amount:          e.Amount,
		BalanceBefore:   e.BalanceBefore,
		BalanceAfter:    e.BalanceAfter,
		OrderCode:       e.OrderCode,
		IdempotencyKey:  e.IdempotencyKey,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}

func ToDomainList(entries []LedgerEntryDB) []entities.LedgerEntry {
	if len(entries) == 0 {
		return []entities.LedgerEntry{}
	}

	result := make([]entities.LedgerEntry, len(entries))
	for i, entry := range entries {
		result[i] = *ToDomain(&entry)
	}
	return result
}
