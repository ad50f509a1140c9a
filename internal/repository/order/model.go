package order

import "time"

type OrderDB struct {
	Code          string
	Status        string
	CityID        int64
	RestaurantID  int64
	CustomerPhone string
	CustomerName  string

	Subtotal    int64
	DeliveryFee int64
	ServiceFee  int64
	Discount    int64
	Total       int64

	PaymentMethod string
	PaymentStatus string

	RiderID    *int64
	RiderBonus int64

	PickupLat  float64
	PickupLng  float64
	DropoffLat float64
	DropoffLng float64

	Rating   *int16
	ProofURL *string

	CreatedAt             time.Time
	ConfirmedAt           *time.Time
	RestaurantConfirmedAt *time.Time
	ReadyAt               *time.Time
	AssignedAt            *time.Time
	PickedUpAt            *time.Time
	InTransitAt           *time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
	RejectedAt            *time.Time
}

type StatusHistoryDB struct {
	ID         int64
	OrderCode  string
	FromStatus string
	ToStatus   string
	Actor      string
	CreatedAt  time.Time
}
