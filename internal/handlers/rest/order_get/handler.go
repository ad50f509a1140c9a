package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"deliverycore/internal/entities"
	"deliverycore/internal/generated/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	orderEntity, history, err := h.service.GetOrder(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderDetailResponse{
		Order:   toOrderDTO(orderEntity),
		History: toHistoryDTOList(history),
	}

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

func toHistoryDTOList(history []entities.StatusHistoryRecord) []dto.StatusHistoryRecord {
	result := make([]dto.StatusHistoryRecord, 0, len(history))
	for _, record := range history {
		result = append(result, dto.StatusHistoryRecord{
			FromStatus: record.From.String(),
			ToStatus:   record.To.String(),
			Actor:      record.Actor.String(),
			CreatedAt:  record.CreatedAt,
		})
	}
	return result
}
