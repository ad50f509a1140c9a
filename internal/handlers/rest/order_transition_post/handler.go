package order_transition_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/entities"
	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/dispatch"
	"deliverycore/internal/service/order"
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
	var transitionDTO dto.OrderTransitionRequest
	err := json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.Transition(
		r.Context(),
		transitionDTO.Code,
		entities.OrderStatusType(transitionDTO.TargetStatus),
		entities.ActorRole(transitionDTO.Actor),
		transitionDTO.RiderID,
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderCode),
			errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidActor),
			errors.Is(err, order.ErrRiderRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrOrderFinalized),
			errors.Is(err, dispatch.ErrRiderUnavailable),
			errors.Is(err, dispatch.ErrRiderOffline):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
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
