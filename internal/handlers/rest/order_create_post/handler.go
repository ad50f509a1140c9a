package order_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/entities"
	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/order"
	"deliverycore/internal/service/zonefee"
	"deliverycore/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCreateEntity := entities.OrderCreate{
		CityID:        orderCreateDTO.CityID,
		RestaurantID:  orderCreateDTO.RestaurantID,
		CustomerPhone: orderCreateDTO.CustomerPhone,
		CustomerName:  orderCreateDTO.CustomerName,
		Subtotal:      orderCreateDTO.Subtotal,
		ServiceFee:    orderCreateDTO.ServiceFee,
		Discount:      orderCreateDTO.Discount,
		RiderBonus:    orderCreateDTO.RiderBonus,
		PaymentMethod: entities.PaymentMethodType(orderCreateDTO.PaymentMethod),
		Pickup:        entities.GeoPoint{Lat: orderCreateDTO.Pickup.Lat, Lng: orderCreateDTO.Pickup.Lng},
		Dropoff:       entities.GeoPoint{Lat: orderCreateDTO.Dropoff.Lat, Lng: orderCreateDTO.Dropoff.Lng},
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrInvalidGeoPoint),
			errors.Is(err, order.ErrInvalidAmounts):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrCustomerBlocked):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, zonefee.ErrNoZoneCoverage):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrOrderCodeCollision):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(o *entities.Order) dto.Order {
	return dto.Order{
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
		Pickup:                dto.GeoPoint{Lat: o.Pickup.Lat, Lng: o.Pickup.Lng},
		Dropoff:               dto.GeoPoint{Lat: o.Dropoff.Lat, Lng: o.Dropoff.Lng},
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
