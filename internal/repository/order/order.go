package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"deliverycore/internal/entities"
	"deliverycore/internal/repository"
	orderservice "deliverycore/internal/service/order"
	"deliverycore/internal/service/settlement"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `code, status, city_id, restaurant_id, customer_phone, customer_name,
		subtotal, delivery_fee, service_fee, discount, total,
		payment_method, payment_status, rider_id, rider_bonus,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, rating, proof_url,
		created_at, confirmed_at, restaurant_confirmed_at, ready_at, assigned_at,
		picked_up_at, in_transit_at, delivered_at, cancelled_at, rejected_at`

// statusTimestampColumns — колонка таймстемпа для каждого достижимого статуса.
var statusTimestampColumns = map[entities.OrderStatusType]string{
	entities.OrderConfirmed:           "confirmed_at",
	entities.OrderRestaurantConfirmed: "restaurant_confirmed_at",
	entities.OrderReady:               "ready_at",
	entities.OrderAssignedRider:       "assigned_at",
	entities.OrderPickedUp:            "picked_up_at",
	entities.OrderInTransit:           "in_transit_at",
	entities.OrderDelivered:           "delivered_at",
	entities.OrderCancelled:           "cancelled_at",
	entities.OrderRejected:            "rejected_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query := `INSERT INTO orders (code, status, city_id, restaurant_id, customer_phone, customer_name,
			subtotal, delivery_fee, service_fee, discount, total,
			payment_method, payment_status, rider_bonus,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderModel.Code,
		orderModel.Status,
		orderModel.CityID,
		orderModel.RestaurantID,
		orderModel.CustomerPhone,
		orderModel.CustomerName,
		orderModel.Subtotal,
		orderModel.DeliveryFee,
		orderModel.ServiceFee,
		orderModel.Discount,
		orderModel.Total,
		orderModel.PaymentMethod,
		orderModel.PaymentStatus,
		orderModel.RiderBonus,
		orderModel.PickupLat,
		orderModel.PickupLng,
		orderModel.DropoffLat,
		orderModel.DropoffLng,
		orderModel.CreatedAt,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, orderservice.ErrOrderCodeCollision
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE code = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, orderservice.ErrConflict
		}

		return nil, fmt.Errorf("unexpected order repository getbycode error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// UpdateStatus — условный переход: WHERE по текущему статусу, чтобы
// конкурентная запись того же заказа получила чистый отказ, а не затерла
// чужой переход. Ноль строк трактуем как проигранную гонку.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	code string,
	from, to entities.OrderStatusType,
	at time.Time,
	riderID *int64,
) (*entities.Order, error) {
	tsColumn, ok := statusTimestampColumns[to]
	if !ok {
		return nil, fmt.Errorf("unexpected order repository updatestatus error: no timestamp column for status %s", to)
	}

	builder := qb.
		Update("orders").
		Set("status", to.String()).
		Set(tsColumn, at)

	if riderID != nil {
		builder = builder.Set("rider_id", *riderID)
	}

	builder = builder.
		Where(sq.Eq{"code": code, "status": from.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, orderservice.ErrConflict
		}

		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) AppendStatusHistory(ctx context.Context, record entities.StatusHistoryRecord) error {
	query := `INSERT INTO order_status_history (order_code, from_status, to_status, actor, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		record.OrderCode,
		record.From.String(),
		record.To.String(),
		record.Actor.String(),
		record.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return orderservice.ErrConflict
		}
		return fmt.Errorf("unexpected order repository appendstatushistory error: %w", err)
	}

	return nil
}

func (r *Repository) GetStatusHistory(ctx context.Context, code string) ([]entities.StatusHistoryRecord, error) {
	query := `SELECT id, order_code, from_status, to_status, actor, created_at
		FROM order_status_history
		WHERE order_code = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getstatushistory error: %w", err)
	}
	defer rows.Close()

	historyModels := make([]StatusHistoryDB, 0, 8)
	for rows.Next() {
		var historyModel StatusHistoryDB
		err := rows.Scan(
			&historyModel.ID,
			&historyModel.OrderCode,
			&historyModel.FromStatus,
			&historyModel.ToStatus,
			&historyModel.Actor,
			&historyModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getstatushistory error: %w", err)
		}
		historyModels = append(historyModels, historyModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getstatushistory error: %w", err)
	}

	return HistoryToDomainList(historyModels), nil
}

// AggregateDelivered собирает доставленные заказы сущности за полуоткрытый
// период [from, to). Для ресторана валовая выручка — сумма subtotal,
// комиссия платформы — сумма service_fee. Для райдера — сумма total,
// комиссий у него нет (его выплата считается по журналу).
func (r *Repository) AggregateDelivered(
	ctx context.Context,
	entityType entities.LedgerEntityType,
	entityID int64,
	from, to time.Time,
) (*settlement.DeliveredAggregate, error) {
	builder := qb.
		Select(
			"COALESCE(SUM(subtotal), 0)",
			"COALESCE(SUM(service_fee), 0)",
			"COUNT(*)",
		).
		From("orders").
		Where(sq.Eq{"status": entities.OrderDelivered.String()}).
		Where(sq.GtOrEq{"delivered_at": from}).
		Where(sq.Lt{"delivered_at": to})

	switch entityType {
	case entities.EntityRestaurant:
		builder = builder.Where(sq.Eq{"restaurant_id": entityID})
	case entities.EntityRider:
		builder = builder.
			Column("COALESCE(SUM(total), 0)").
			Where(sq.Eq{"rider_id": entityID})
	default:
		return nil, fmt.Errorf("unexpected order repository aggregatedelivered error: unknown entity type %s", entityType)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository aggregatedelivered error: %w", err)
	}

	var aggregate settlement.DeliveredAggregate
	if entityType == entities.EntityRider {
		var subtotal, serviceFee int64
		err = r.querier.QueryRow(ctx, query, args...).
			Scan(&subtotal, &serviceFee, &aggregate.TotalDeliveries, &aggregate.GrossSales)
	} else {
		err = r.querier.QueryRow(ctx, query, args...).
			Scan(&aggregate.GrossSales, &aggregate.PlatformFees, &aggregate.TotalDeliveries)
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository aggregatedelivered error: %w", err)
	}

	return &aggregate, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.Code,
		&orderModel.Status,
		&orderModel.CityID,
		&orderModel.RestaurantID,
		&orderModel.CustomerPhone,
		&orderModel.CustomerName,
		&orderModel.Subtotal,
		&orderModel.DeliveryFee,
		&orderModel.ServiceFee,
		&orderModel.Discount,
		&orderModel.Total,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.RiderID,
		&orderModel.RiderBonus,
		&orderModel.PickupLat,
		&orderModel.PickupLng,
		&orderModel.DropoffLat,
		&orderModel.DropoffLng,
		&orderModel.Rating,
		&orderModel.ProofURL,
		&orderModel.CreatedAt,
		&orderModel.ConfirmedAt,
		&orderModel.RestaurantConfirmedAt,
		&orderModel.ReadyAt,
		&orderModel.AssignedAt,
		&orderModel.PickedUpAt,
		&orderModel.InTransitAt,
		&orderModel.DeliveredAt,
		&orderModel.CancelledAt,
		&orderModel.RejectedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
