package order

import (
	"deliverycore/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		Code:          o.Code,
		Status:        entities.OrderStatusType(o.Status),
		CityID:        o.CityID,
		RestaurantID:  o.RestaurantID,
		CustomerPhone: o.CustomerPhone,
		CustomerName:  o.CustomerName,
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		ServiceFee:    o.ServiceFee,
		Discount:      o.Discount,
		Total:         o.Total,
		PaymentMethod: entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatusType(o.PaymentStatus),
		RiderID:       o.RiderID,
		RiderBonus:    o.RiderBonus,
		Pickup:        entities.GeoPoint{Lat: o.PickupLat, Lng: o.PickupLng},
		Dropoff:       entities.GeoPoint{Lat: o.DropoffLat, Lng: o.DropoffLng},
		Rating:        o.Rating,
		ProofURL:      o.ProofURL,
		CreatedAt:     o.CreatedAt,
		ConfirmedAt:   o.ConfirmedAt,
		RestConfAt:    o.RestaurantConfirmedAt,
		ReadyAt:       o.ReadyAt,
		AssignedAt:    o.AssignedAt,
		PickedUpAt:    o.PickedUpAt,
		InTransitAt:   o.InTransitAt,
		DeliveredAt:   o.DeliveredAt,
		CancelledAt:   o.CancelledAt,
		RejectedAt:    o.RejectedAt,
	}
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	return &OrderDB{
		Code:                  o.Code,
		Status:                o.Status.String(),
		CityID:                o.CityID,
		RestaurantID:          o.RestaurantID,
		CustomerPhone:         o.CustomerPhone,
		CustomerName:          o.CustomerName,
		Subtotal:              o.Subtotal,
		DeliveryFee:           o.DeliveryFee,
		ServiceFee:            o.ServiceFee,
		Discount:              o.Discount,
		Total:                 o.Total,
		PaymentMethod:         o.PaymentMethod.String(),
		PaymentStatus:         o.PaymentStatus.String(),
		RiderID:               o.RiderID,
		RiderBonus:            o.RiderBonus,
		PickupLat:             o.Pickup.Lat,
		PickupLng:             o.Pickup.Lng,
		DropoffLat:            o.Dropoff.Lat,
		DropoffLng:            o.Dropoff.Lng,
		Rating:                o.Rating,
		ProofURL:              o.ProofURL,
		CreatedAt:             o.CreatedAt,
		ConfirmedAt:           o.ConfirmedAt,
		RestaurantConfirmedAt: o.RestConfAt,
		ReadyAt:               o.ReadyAt,
		AssignedAt:            o.AssignedAt,
		PickedUpAt:            o.PickedUpAt,
		InTransitAt:           o.InTransitAt,
		DeliveredAt:           o.DeliveredAt,
		CancelledAt:           o.CancelledAt,
		RejectedAt:            o.RejectedAt,
	}
}

func HistoryToDomain(h *StatusHistoryDB) *entities.StatusHistoryRecord {
	if h == nil {
		return nil
	}

	return &entities.StatusHistoryRecord{
		ID:        h.ID,
		OrderCode: h.OrderCode,
		From:      entities.OrderStatusType(h.FromStatus),
		To:        entities.OrderStatusType(h.ToStatus),
		Actor:     entities.ActorRole(h.Actor),
		CreatedAt: h.CreatedAt,
	}
}

func HistoryToDomainList(records []StatusHistoryDB) []entities.StatusHistoryRecord {
	if len(records) == 0 {
		return []entities.StatusHistoryRecord{}
	}

	result := make([]entities.StatusHistoryRecord, len(records))
	for i, record := range records {
		result[i] = *HistoryToDomain(&record)
	}
	return result
}
