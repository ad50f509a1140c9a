package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliverycore/internal/entities"
	"deliverycore/pkg/money"
)

type Ledger struct {
	repository    Repository
	riderProvider RiderProvider
	txManager     TxManager
}

func New(repository Repository, riderProvider RiderProvider, txManager TxManager) *Ledger {
	return &Ledger{
		repository:    repository,
		riderProvider: riderProvider,
		txManager:     txManager,
	}
}

// PostEntry добавляет запись в цепочку балансов. Чтение последней записи и
// вставка новой — одна serializable транзакция: цепочка без разрывов и
// потерянных обновлений даже под конкурентными проводками. Повтор проводки
// с тем же ключом идемпотентности возвращает уже существующую запись.
func (l *Ledger) PostEntry(ctx context.Context, post entities.LedgerPost) (*entities.LedgerEntry, error) {
	if err := validatePost(&post); err != nil {
		return nil, err
	}

	var result *entities.LedgerEntry
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		balanceBefore := int64(0)
		last, err := l.repository.GetLastEntry(ctx, post.EntityType, post.EntityID)
		if err != nil && !errors.Is(err, ErrEntryNotFound) {
			return fmt.Errorf("get last entry: %w", err)
		}
		if last != nil {
			balanceBefore = last.BalanceAfter
		}

		balanceAfter := balanceBefore + post.Amount
		if balanceAfter < 0 && post.TransactionType == entities.TxLiquidate && !post.AllowNegative {
			return ErrInsufficientBalance
		}

		entry := entities.LedgerEntry{
			EntityType:      post.EntityType,
			EntityID:        post.EntityID,
			TransactionType: post.TransactionType,
			Amount:          post.Amount,
			BalanceBefore:   balanceBefore,
			BalanceAfter:    balanceAfter,
			OrderCode:       post.OrderCode,
			Notes:           post.Notes,
			CreatedAt:       time.Now().UTC(),
		}
		switch {
		case post.IdempotencyKey != nil:
			entry.IdempotencyKey = post.IdempotencyKey
		case post.OrderCode != nil:
			key := idempotencyKey(*post.OrderCode, post.TransactionType)
			entry.IdempotencyKey = &key
		}

		result, err = l.repository.Append(ctx, entry)
		if err != nil {
			if errors.Is(err, ErrDuplicatePosting) && entry.IdempotencyKey != nil {
				result, err = l.repository.GetByIdempotencyKey(ctx, *entry.IdempotencyKey)
				if err != nil {
					return fmt.Errorf("get duplicate posting: %w", err)
				}
				duplicatePostingsTotal.Inc()
				return nil
			}
			return fmt.Errorf("append entry: %w", err)
		}

		postingsTotal.WithLabelValues(post.EntityType.String(), post.TransactionType.String()).Inc()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PostCommission начисляет комиссию райдеру за доставленный заказ:
// round_half_up(total * commission_rate) + rider_bonus, earn-проводка с
// привязкой к заказу. Нулевая сумма (фиксированный оклад без бонуса)
// проводку не создает.
func (l *Ledger) PostCommission(ctx context.Context, order *entities.Order) (*entities.LedgerEntry, error) {
	if order == nil || order.RiderID == nil {
		return nil, ErrInvalidEntityID
	}

	rider, err := l.riderProvider.GetByID(ctx, *order.RiderID)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}

	amount := order.RiderBonus
	if rider.PayModel == entities.PayCommission {
		amount += money.RoundHalfUp(float64(order.Total) * rider.CommissionRate)
	}
	if amount == 0 {
		return nil, nil
	}

	orderCode := order.Code
	return l.PostEntry(ctx, entities.LedgerPost{
		EntityType:      entities.EntityRider,
		EntityID:        rider.ID,
		TransactionType: entities.TxEarn,
		Amount:          amount,
		OrderCode:       &orderCode,
		Notes:           fmt.Sprintf("delivery commission for order %s", order.Code),
	})
}

// GetBalance всегда выводится из balance_after последней записи —
// журнал остается единственным источником истины.
func (l *Ledger) GetBalance(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) (int64, error) {
	if !isValidEntityType(entityType.String()) {
		return 0, ErrInvalidEntityType
	}
	if entityID <= 0 {
		return 0, ErrInvalidEntityID
	}

	last, err := l.repository.GetLastEntry(ctx, entityType, entityID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get last entry: %w", err)
	}
	return last.BalanceAfter, nil
}

func (l *Ledger) GetHistory(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.LedgerEntry, error) {
	if !isValidEntityType(entityType.String()) {
		return nil, ErrInvalidEntityType
	}
	if entityID <= 0 {
		return nil, ErrInvalidEntityID
	}

	entries, err := l.repository.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (l *Ledger) SumEarnInPeriod(ctx context.Context, entityType entities.LedgerEntityType, entityID int64, from, to time.Time) (int64, error) {
	sum, err := l.repository.SumEarnInPeriod(ctx, entityType, entityID, from, to)
	if err != nil {
		return 0, fmt.Errorf("sum earn entries: %w", err)
	}
	return sum, nil
}

// VerifyChains проверяет непрерывность балансовых цепочек по всем
// сущностям и возвращает число найденных разрывов.
func (l *Ledger) VerifyChains(ctx context.Context) (int64, error) {
	breaks, err := l.repository.CountChainBreaks(ctx)
	if err != nil {
		return 0, fmt.Errorf("count chain breaks: %w", err)
	}
	return breaks, nil
}

func validatePost(post *entities.LedgerPost) error {
	if !isValidEntityType(post.EntityType.String()) {
		return ErrInvalidEntityType
	}
	if post.EntityID <= 0 {
		return ErrInvalidEntityID
	}
	if !isValidTransactionType(post.TransactionType.String()) {
		return ErrInvalidTransactionType
	}
	if post.Amount == 0 {
		return ErrNoOpTransaction
	}
	return nil
}

func idempotencyKey(orderCode string, txType entities.LedgerTransactionType) string {
	return fmt.Sprintf("%s:%s", orderCode, txType)
}
