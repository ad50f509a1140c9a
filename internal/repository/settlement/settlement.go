package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"deliverycore/internal/entities"
	settlementservice "deliverycore/internal/service/settlement"
)

const settlementColumns = `id, entity_type, entity_id, period_start, period_end,
		gross_sales, total_deliveries, net_payout, status, paid_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, settlementEntity entities.Settlement) (*entities.Settlement, error) {
	query := `INSERT INTO settlements (entity_type, entity_id, period_start, period_end,
			gross_sales, total_deliveries, net_payout, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + settlementColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		settlementEntity.EntityType.String(),
		settlementEntity.EntityID,
		settlementEntity.PeriodStart,
		settlementEntity.PeriodEnd,
		settlementEntity.GrossSales,
		settlementEntity.TotalDeliveries,
		settlementEntity.NetPayout,
		settlementEntity.Status.String(),
		settlementEntity.CreatedAt,
	)

	settlementModel, err := scanSettlement(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository insert error: %w", err)
	}

	return ToDomain(settlementModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Settlement, error) {
	query := `SELECT ` + settlementColumns + `
		FROM settlements
		WHERE id = $1`

	settlementModel, err := scanSettlement(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlementservice.ErrSettlementNotFound
		}

		return nil, fmt.Errorf("unexpected settlement repository getbyid error: %w", err)
	}

	return ToDomain(settlementModel), nil
}

func (r *Repository) List(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.Settlement, error) {
	query := `SELECT ` + settlementColumns + `
		FROM settlements
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY period_start DESC`

	rows, err := r.querier.Query(ctx, query, entityType.String(), entityID)
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository list error: %w", err)
	}
	defer rows.Close()

	settlementModels := make([]SettlementDB, 0, 8)
	for rows.Next() {
		var settlementModel SettlementDB
		err := rows.Scan(
			&settlementModel.ID,
			&settlementModel.EntityType,
			&settlementModel.EntityID,
			&settlementModel.PeriodStart,
			&settlementModel.PeriodEnd,
			&settlementModel.GrossSales,
			&settlementModel.TotalDeliveries,
			&settlementModel.NetPayout,
			&settlementModel.Status,
			&settlementModel.PaidAt,
			&settlementModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected settlement repository list error: %w", err)
		}
		settlementModels = append(settlementModels, settlementModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository list error: %w", err)
	}

	return ToDomainList(settlementModels), nil
}

// HasOverlappingPeriod — пересечение полуоткрытых интервалов:
// existing.start < to AND existing.end > from.
func (r *Repository) HasOverlappingPeriod(
	ctx context.Context,
	entityType entities.LedgerEntityType,
	entityID int64,
	from, to time.Time,
) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1
		FROM settlements
		WHERE entity_type = $1
			AND entity_id = $2
			AND period_start < $4
			AND period_end > $3
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, entityType.String(), entityID, from, to).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected settlement repository hasoverlappingperiod error: %w", err)
	}

	return exists, nil
}

// MarkPaid условный: только из pending, конкурентная выплата того же
// расчета получит чистый отказ.
func (r *Repository) MarkPaid(ctx context.Context, id int64, paidAt time.Time) (*entities.Settlement, error) {
	query := `UPDATE settlements
		SET status = $2, paid_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + settlementColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		id,
		entities.SettlementPaid.String(),
		paidAt,
		entities.SettlementPending.String(),
	)

	settlementModel, err := scanSettlement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlementservice.ErrAlreadyPaid
		}

		return nil, fmt.Errorf("unexpected settlement repository markpaid error: %w", err)
	}

	return ToDomain(settlementModel), nil
}

// ReversePaid — аудируемый откат: paid -> disputed, paid_at очищается.
// Сама запись расчета остается, компенсацию проводит журнал.
func (r *Repository) ReversePaid(ctx context.Context, id int64) (*entities.Settlement, error) {
	query := `UPDATE settlements
		SET status = $2, paid_at = NULL
		WHERE id = $1 AND status = $3
		RETURNING ` + settlementColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		id,
		entities.SettlementDisputed.String(),
		entities.SettlementPaid.String(),
	)

	settlementModel, err := scanSettlement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlementservice.ErrNotPaid
		}

		return nil, fmt.Errorf("unexpected settlement repository reversepaid error: %w", err)
	}

	return ToDomain(settlementModel), nil
}

func scanSettlement(row pgx.Row) (*SettlementDB, error) {
	var settlementModel SettlementDB
	err := row.Scan(
		&settlementModel.ID,
		&settlementModel.EntityType,
		&settlementModel.EntityID,
		&settlementModel.PeriodStart,
		&settlementModel.PeriodEnd,
		&settlementModel.GrossSales,
		&settlementModel.TotalDeliveries,
		&settlementModel.NetPayout,
		&settlementModel.Status,
		&settlementModel.PaidAt,
		&settlementModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settlementModel, nil
}
