package entities

import "time"

type Order struct {
	Code          string
	Status        OrderStatusType
	CityID        int64
	RestaurantID  int64
	CustomerPhone string
	CustomerName  string

	Subtotal    int64
	DeliveryFee int64
	ServiceFee  int64
	Discount    int64
	Total       int64

	PaymentMethod PaymentMethodType
	PaymentStatus PaymentStatusType

	RiderID    *int64
	RiderBonus int64

	Pickup   GeoPoint
	Dropoff  GeoPoint
	Rating   *int16
	ProofURL *string

	CreatedAt   time.Time
	ConfirmedAt *time.Time
	RestConfAt  *time.Time
	ReadyAt     *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	RejectedAt  *time.Time
}

type GeoPoint struct {
	Lat float64
	Lng float64
}

type OrderStatusType string

const (
	OrderCart                OrderStatusType = "cart"
	OrderConfirmed           OrderStatusType = "confirmed"
	OrderRestaurantConfirmed OrderStatusType = "restaurant_confirmed"
	OrderReady               OrderStatusType = "ready"
	OrderAssignedRider       OrderStatusType = "assigned_rider"
	OrderPickedUp            OrderStatusType = "picked_up"
	OrderInTransit           OrderStatusType = "in_transit"
	OrderDelivered           OrderStatusType = "delivered"
	OrderCancelled           OrderStatusType = "cancelled"
	OrderRejected            OrderStatusType = "rejected"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, что заказ стал неизменяемой историей.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderRejected:
		return true
	default:
		return false
	}
}

type PaymentMethodType string

const (
	PaymentCash       PaymentMethodType = "cash"
	PaymentElectronic PaymentMethodType = "electronic"
)

func (t PaymentMethodType) String() string {
	return string(t)
}

type PaymentStatusType string

const (
	PaymentPending PaymentStatusType = "pending"
	PaymentSettled PaymentStatusType = "settled"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

// ActorRole — роль инициатора перехода, проверяется по таблице переходов.
type ActorRole string

const (
	ActorCustomer   ActorRole = "customer"
	ActorRestaurant ActorRole = "restaurant"
	ActorDispatcher ActorRole = "dispatcher"
	ActorRider      ActorRole = "rider"
	ActorSystem     ActorRole = "system"
	ActorOperator   ActorRole = "operator"
)

func (r ActorRole) String() string {
	return string(r)
}

type OrderCreate struct {
	CityID        int64
	RestaurantID  int64
	CustomerPhone string
	CustomerName  string
	Subtotal      int64
	ServiceFee    int64
	Discount      int64
	RiderBonus    int64
	PaymentMethod PaymentMethodType
	Pickup        GeoPoint
	Dropoff       GeoPoint
}

// StatusHistoryRecord — одна строка append-only истории статусов заказа.
type StatusHistoryRecord struct {
	ID        int64
	OrderCode string
	From      OrderStatusType
	To        OrderStatusType
	Actor     ActorRole
	CreatedAt time.Time
}

// OrderStatusChangedEvent публикуется в Kafka после коммита перехода.
type OrderStatusChangedEvent struct {
	OrderCode     string          `json:"order_code"`
	Status        OrderStatusType `json:"status"`
	PrevStatus    OrderStatusType `json:"prev_status"`
	Actor         ActorRole       `json:"actor"`
	CustomerPhone string          `json:"customer_phone"`
	RiderID       *int64          `json:"rider_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
