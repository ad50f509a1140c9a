package rider

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"deliverycore/internal/entities"
	"deliverycore/internal/repository"
	"deliverycore/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const riderColumns = `id, name, phone, city_id, is_online, is_available, current_order_code,
		lat, lng, location_at, pay_model, commission_rate, shift_started_at,
		total_deliveries, avg_rating, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)
	query := `INSERT INTO riders (name, phone, city_id, pay_model, commission_rate)
		VALUES ($1, $2, $3, $4, COALESCE($5, 0))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.Name,
		riderModifyModel.Phone,
		riderModifyModel.CityID,
		riderModifyModel.PayModel,
		riderModifyModel.CommissionRate,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, dispatch.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + `
		FROM riders
		WHERE id = $1`

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrRiderNotFound
		}

		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)

	builder := qb.
		Update("riders")

	// опционнные поля
	if riderModifyModel.Name != nil {
		builder = builder.Set("name", riderModifyModel.Name)
	}
	if riderModifyModel.Phone != nil {
		builder = builder.Set("phone", riderModifyModel.Phone)
	}
	if riderModifyModel.CityID != nil {
		builder = builder.Set("city_id", riderModifyModel.CityID)
	}
	if riderModifyModel.PayModel != nil {
		builder = builder.Set("pay_model", riderModifyModel.PayModel)
	}
	if riderModifyModel.CommissionRate != nil {
		builder = builder.Set("commission_rate", riderModifyModel.CommissionRate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": riderModifyModel.ID}).
		Suffix("RETURNING " + riderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrRiderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrConflict
		}

		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(riderModel), nil
}

// SetOnline переключает смену. Уход в оффлайн условный: строка не
// обновится, пока за райдером числится активный заказ. Повторный выход на
// линию с активным заказом не освобождает райдера и не сбрасывает начало
// смены.
func (r *Repository) SetOnline(ctx context.Context, riderID int64, online bool, at time.Time) (*entities.Rider, error) {
	query := `UPDATE riders
		SET is_online = $2,
			is_available = ($2 AND current_order_code IS NULL),
			shift_started_at = CASE
				WHEN NOT $2 THEN NULL
				WHEN is_online THEN shift_started_at
				ELSE $3
			END,
			updated_at = NOW()
		WHERE id = $1 AND ($2 OR current_order_code IS NULL)
		RETURNING ` + riderColumns

	riderModel, err := scanRider(r.querier.QueryRow(ctx, query, riderID, online, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrActiveOrderInProgress
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, dispatch.ErrConflict
		}

		return nil, fmt.Errorf("unexpected rider repository setonline error: %w", err)
	}

	return ToDomain(riderModel), nil
}

func (r *Repository) UpdateLocation(ctx context.Context, riderID int64, lat, lng float64, at time.Time) error {
	query := `UPDATE riders
		SET lat = $2, lng = $3, location_at = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, riderID, lat, lng, at)
	if err != nil {
		return fmt.Errorf("unexpected rider repository updatelocation error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dispatch.ErrRiderNotFound
	}

	return nil
}

// Acquire захватывает эксклюзивную блокировку райдера под заказ. Условный
// UPDATE: конкурентное назначение, успевшее раньше, оставит ноль строк,
// и проигравший получит точную причину отказа по свежему чтению.
func (r *Repository) Acquire(ctx context.Context, riderID int64, orderCode string) error {
	query := `UPDATE riders
		SET is_available = FALSE, current_order_code = $2, updated_at = NOW()
		WHERE id = $1
			AND is_online
			AND is_available
			AND current_order_code IS NULL`

	tag, err := r.querier.Exec(ctx, query, riderID, orderCode)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return dispatch.ErrRiderUnavailable
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return dispatch.ErrConflict
		}
		return fmt.Errorf("unexpected rider repository acquire error: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	rider, err := r.GetByID(ctx, riderID)
	if err != nil {
		return err
	}
	if !rider.IsOnline {
		return dispatch.ErrRiderOffline
	}
	return dispatch.ErrRiderUnavailable
}

func (r *Repository) Release(ctx context.Context, riderID int64) error {
	query := `UPDATE riders
		SET is_available = is_online, current_order_code = NULL, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, riderID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return dispatch.ErrConflict
		}
		return fmt.Errorf("unexpected rider repository release error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dispatch.ErrRiderNotFound
	}

	return nil
}

// RecordDelivery инкрементит счетчики доставки. Средний рейтинг пересчитывается
// на старых значениях строки, Postgres применяет все SET из снимка до UPDATE.
func (r *Repository) RecordDelivery(ctx context.Context, riderID int64, rating *int16) error {
	query := `UPDATE riders
		SET total_deliveries = total_deliveries + 1,
			avg_rating = CASE
				WHEN $2::smallint IS NULL THEN avg_rating
				ELSE (avg_rating * total_deliveries + $2) / (total_deliveries + 1)
			END,
			updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, riderID, rating)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return dispatch.ErrConflict
		}
		return fmt.Errorf("unexpected rider repository recorddelivery error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dispatch.ErrRiderNotFound
	}

	return nil
}

func scanRider(row pgx.Row) (*RiderDB, error) {
	var riderModel RiderDB
	err := row.Scan(
		&riderModel.ID,
		&riderModel.Name,
		&riderModel.Phone,
		&riderModel.CityID,
		&riderModel.IsOnline,
		&riderModel.IsAvailable,
		&riderModel.CurrentOrderCode,
		&riderModel.Lat,
		&riderModel.Lng,
		&riderModel.LocationAt,
		&riderModel.PayModel,
		&riderModel.CommissionRate,
		&riderModel.ShiftStartedAt,
		&riderModel.TotalDeliveries,
		&riderModel.AvgRating,
		&riderModel.CreatedAt,
		&riderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &riderModel, nil
}
