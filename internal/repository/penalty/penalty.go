package penalty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"deliverycore/internal/entities"
	penaltyservice "deliverycore/internal/service/penalty"
)

const penaltyColumns = `phone, level, total_penalties, banned_until, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.CustomerPenalty, error) {
	query := `SELECT ` + penaltyColumns + `
		FROM customer_penalties
		WHERE phone = $1`

	penaltyModel, err := scanPenalty(r.querier.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, penaltyservice.ErrPenaltyNotFound
		}

		return nil, fmt.Errorf("unexpected penalty repository getbyphone error: %w", err)
	}

	return ToDomain(penaltyModel), nil
}

func (r *Repository) Upsert(ctx context.Context, penalty entities.CustomerPenalty) (*entities.CustomerPenalty, error) {
	query := `INSERT INTO customer_penalties (phone, level, total_penalties, banned_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (phone) DO UPDATE SET
			level = EXCLUDED.level,
			total_penalties = EXCLUDED.total_penalties,
			banned_until = EXCLUDED.banned_until,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + penaltyColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		penalty.Phone,
		penalty.Level.String(),
		penalty.TotalPenalties,
		penalty.BannedUntil,
		penalty.CreatedAt,
		penalty.UpdatedAt,
	)

	penaltyModel, err := scanPenalty(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected penalty repository upsert error: %w", err)
	}

	return ToDomain(penaltyModel), nil
}

func (r *Repository) AppendRecord(ctx context.Context, record entities.PenaltyRecord) error {
	query := `INSERT INTO penalty_records (phone, reason, created_at)
		VALUES ($1, $2, $3)`

	_, err := r.querier.Exec(ctx, query, record.Phone, record.Reason, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("unexpected penalty repository appendrecord error: %w", err)
	}

	return nil
}

func (r *Repository) ListRecords(ctx context.Context, phone string) ([]entities.PenaltyRecord, error) {
	query := `SELECT id, phone, reason, created_at
		FROM penalty_records
		WHERE phone = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, phone)
	if err != nil {
		return nil, fmt.Errorf("unexpected penalty repository listrecords error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]PenaltyRecordDB, 0, 8)
	for rows.Next() {
		var recordModel PenaltyRecordDB
		err := rows.Scan(
			&recordModel.ID,
			&recordModel.Phone,
			&recordModel.Reason,
			&recordModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected penalty repository listrecords error: %w", err)
		}
		recordModels = append(recordModels, recordModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected penalty repository listrecords error: %w", err)
	}

	return RecordToDomainList(recordModels), nil
}

func (r *Repository) CountRecordsSince(ctx context.Context, phone string, since time.Time) (int64, error) {
	query := `SELECT COUNT(*)
		FROM penalty_records
		WHERE phone = $1 AND created_at >= $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, phone, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected penalty repository countrecordssince error: %w", err)
	}

	return count, nil
}

// ExpireBans снимает истекшие баны одним проходом. Возвращает число
// затронутых клиентов для метрики фоновой задачи.
func (r *Repository) ExpireBans(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE customer_penalties
		SET level = $2, banned_until = NULL, updated_at = $1
		WHERE level = $3 AND banned_until IS NOT NULL AND banned_until <= $1`

	tag, err := r.querier.Exec(
		ctx,
		query,
		now,
		entities.PenaltyNone.String(),
		entities.PenaltyBanned.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected penalty repository expirebans error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanPenalty(row pgx.Row) (*CustomerPenaltyDB, error) {
	var penaltyModel CustomerPenaltyDB
	err := row.Scan(
		&penaltyModel.Phone,
		&penaltyModel.Level,
		&penaltyModel.TotalPenalties,
		&penaltyModel.BannedUntil,
		&penaltyModel.CreatedAt,
		&penaltyModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &penaltyModel, nil
}
