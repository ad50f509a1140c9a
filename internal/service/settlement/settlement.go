package settlement

import (
	"context"
	"fmt"
	"time"

	"deliverycore/internal/entities"
)

type Settlement struct {
	repository      Repository
	orderAggregator OrderAggregator
	ledgerService   LedgerService
	txManager       TxManager
}

func New(
	repository Repository,
	orderAggregator OrderAggregator,
	ledgerService LedgerService,
	txManager TxManager,
) *Settlement {
	return &Settlement{
		repository:      repository,
		orderAggregator: orderAggregator,
		ledgerService:   ledgerService,
		txManager:       txManager,
	}
}

// Generate собирает доставленные заказы сущности за полуоткрытый период
// [from, to) в pending-расчет. Пересечение с существующим периодом —
// отказ, двойная выплата исключена.
func (s *Settlement) Generate(
	ctx context.Context,
	entityType entities.LedgerEntityType,
	entityID int64,
	from, to time.Time,
) (*entities.Settlement, error) {
	if !isValidEntityType(entityType.String()) {
		return nil, ErrInvalidEntityType
	}
	if entityID <= 0 {
		return nil, ErrInvalidEntityID
	}
	if !from.Before(to) {
		return nil, ErrInvalidPeriod
	}

	var result *entities.Settlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		overlaps, err := s.repository.HasOverlappingPeriod(ctx, entityType, entityID, from, to)
		if err != nil {
			return fmt.Errorf("check overlapping period: %w", err)
		}
		if overlaps {
			return ErrDuplicatePeriod
		}

		aggregate, err := s.orderAggregator.AggregateDelivered(ctx, entityType, entityID, from, to)
		if err != nil {
			return fmt.Errorf("aggregate delivered orders: %w", err)
		}

		netPayout := aggregate.GrossSales - aggregate.PlatformFees
		if entityType == entities.EntityRider {
			netPayout, err = s.ledgerService.SumEarnInPeriod(ctx, entityType, entityID, from, to)
			if err != nil {
				return fmt.Errorf("sum rider earnings: %w", err)
			}
		}

		result, err = s.repository.Insert(ctx, entities.Settlement{
			EntityType:      entityType,
			EntityID:        entityID,
			PeriodStart:     from,
			PeriodEnd:       to,
			GrossSales:      aggregate.GrossSales,
			TotalDeliveries: aggregate.TotalDeliveries,
			NetPayout:       netPayout,
			Status:          entities.SettlementPending,
			CreatedAt:       time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkPaid — односторонний переход pending -> paid. Вместе со сменой
// статуса в той же транзакции проводится liquidate-списание net_payout,
// обнуляющее выплаченную часть баланса.
func (s *Settlement) MarkPaid(ctx context.Context, id int64) (*entities.Settlement, error) {
	if id <= 0 {
		return nil, ErrSettlementNotFound
	}

	var result *entities.Settlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get settlement: %w", err)
		}
		if current.Status == entities.SettlementPaid {
			return ErrAlreadyPaid
		}

		result, err = s.repository.MarkPaid(ctx, id, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("mark paid: %w", err)
		}

		if result.NetPayout != 0 {
			key := fmt.Sprintf("settlement:%d:liquidate", id)
			_, err = s.ledgerService.PostEntry(ctx, entities.LedgerPost{
				EntityType:      result.EntityType,
				EntityID:        result.EntityID,
				TransactionType: entities.TxLiquidate,
				Amount:          -result.NetPayout,
				IdempotencyKey:  &key,
				Notes:           fmt.Sprintf("payout for period %s - %s", result.PeriodStart.Format(time.DateOnly), result.PeriodEnd.Format(time.DateOnly)),
				AllowNegative:   true,
			})
			if err != nil {
				return fmt.Errorf("post liquidation entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReversePaid — явный откат выплаты уполномоченным актором: статус
// становится disputed, paid_at очищается, списание компенсируется
// adjustment-проводкой. История в журнале сохраняется полностью.
func (s *Settlement) ReversePaid(ctx context.Context, id int64, actor entities.ActorRole) (*entities.Settlement, error) {
	if actor != entities.ActorOperator {
		return nil, ErrNotAuthorized
	}

	var result *entities.Settlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get settlement: %w", err)
		}
		if current.Status != entities.SettlementPaid {
			return ErrNotPaid
		}

		result, err = s.repository.ReversePaid(ctx, id)
		if err != nil {
			return fmt.Errorf("reverse paid: %w", err)
		}

		if current.NetPayout != 0 {
			key := fmt.Sprintf("settlement:%d:reversal", id)
			_, err = s.ledgerService.PostEntry(ctx, entities.LedgerPost{
				EntityType:      current.EntityType,
				EntityID:        current.EntityID,
				TransactionType: entities.TxAdjustment,
				Amount:          current.NetPayout,
				IdempotencyKey:  &key,
				Notes:           fmt.Sprintf("reversal of settlement %d by %s", id, actor),
			})
			if err != nil {
				return fmt.Errorf("post reversal entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Settlement) List(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.Settlement, error) {
	if !isValidEntityType(entityType.String()) {
		return nil, ErrInvalidEntityType
	}
	if entityID <= 0 {
		return nil, ErrInvalidEntityID
	}

	settlements, err := s.repository.List(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	return settlements, nil
}

func isValidEntityType(entityType string) bool {
	switch entityType {
	case "rider", "restaurant":
		return true
	default:
		return false
	}
}
