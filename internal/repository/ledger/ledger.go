package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"deliverycore/internal/entities"
	"deliverycore/internal/repository"
	ledgerservice "deliverycore/internal/service/ledger"
)

const entryColumns = `id, entity_type, entity_id, transaction_type, amount,
		balance_before, balance_after, order_code, idempotency_key, notes, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append дописывает запись в журнал. Записи никогда не обновляются и не
// удаляются, уникальный idempotency_key защищает от повторной проводки.
func (r *Repository) Append(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error) {
	query := `INSERT INTO ledger_entries (entity_type, entity_id, transaction_type, amount,
			balance_before, balance_after, order_code, idempotency_key, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + entryColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		entry.EntityType.String(),
		entry.EntityID,
		entry.TransactionType.String(),
		entry.Amount,
		entry.BalanceBefore,
		entry.BalanceAfter,
		entry.OrderCode,
		entry.IdempotencyKey,
		entry.Notes,
		entry.CreatedAt,
	)

	entryModel, err := scanEntry(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, ledgerservice.ErrDuplicatePosting
		}
		return nil, fmt.Errorf("unexpected ledger repository append error: %w", err)
	}

	return ToDomain(entryModel), nil
}

func (r *Repository) GetLastEntry(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) (*entities.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY id DESC
		LIMIT 1`

	entryModel, err := scanEntry(r.querier.QueryRow(ctx, query, entityType.String(), entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledgerservice.ErrEntryNotFound
		}

		return nil, fmt.Errorf("unexpected ledger repository getlastentry error: %w", err)
	}

	return ToDomain(entryModel), nil
}

func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*entities.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE idempotency_key = $1`

	entryModel, err := scanEntry(r.querier.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledgerservice.ErrEntryNotFound
		}

		return nil, fmt.Errorf("unexpected ledger repository getbyidempotencykey error: %w", err)
	}

	return ToDomain(entryModel), nil
}

func (r *Repository) ListByEntity(ctx context.Context, entityType entities.LedgerEntityType, entityID int64) ([]entities.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, entityType.String(), entityID)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository listbyentity error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]LedgerEntryDB, 0, 8)
	for rows.Next() {
		var entryModel LedgerEntryDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.EntityType,
			&entryModel.EntityID,
			&entryModel.TransactionType,
			&entryModel.Amount,
			&entryModel.BalanceBefore,
			&entryModel.BalanceAfter,
			&entryModel.OrderCode,
			&entryModel.IdempotencyKey,
			&entryModel.Notes,
			&entryModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ledger repository listbyentity error: %w", err)
		}
		entryModels = append(entryModels, entryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository listbyentity error: %w", err)
	}

	return ToDomainList(entryModels), nil
}

func (r *Repository) SumEarnInPeriod(
	ctx context.Context,
	entityType entities.LedgerEntityType,
	entityID int64,
	from, to time.Time,
) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)
		FROM ledger_entries
		WHERE entity_type = $1
			AND entity_id = $2
			AND transaction_type = $3
			AND created_at >= $4
			AND created_at < $5`

	var sum int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entityType.String(),
		entityID,
		entities.TxEarn.String(),
		from,
		to,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected ledger repository sumearninperiod error: %w", err)
	}

	return sum, nil
}

func scanEntry(row pgx.Row) (*LedgerEntryDB, error) {
	var entryModel LedgerEntryDB
	err := row.Scan(
		&entryModel.ID,
		&entryModel.EntityType,
		&entryModel.EntityID,
		&entryModel.TransactionType,
		&entryModel.Amount,
		&entryModel.BalanceBefore,
		&entryModel.BalanceAfter,
		&entryModel.OrderCode,
		&entryModel.IdempotencyKey,
		&entryModel.Notes,
		&entryModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entryModel, nil
}

// CountChainBreaks считает записи, у которых balance_before не совпадает
// с balance_after предыдущей записи той же сущности. Для append-only
// журнала любое значение больше нуля означает повреждение цепочки.
func (r *Repository) CountChainBreaks(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*)
		FROM (
			SELECT balance_before,
				LAG(balance_after) OVER (
					PARTITION BY entity_type, entity_id
					ORDER BY id
				) AS prev_balance_after
			FROM ledger_entries
		) chained
		WHERE prev_balance_after IS NOT NULL
			AND balance_before <> prev_balance_after`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected ledger repository countchainbreaks error: %w", err)
	}

	return count, nil
}
