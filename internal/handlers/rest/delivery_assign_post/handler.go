package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var assignDTO dto.DeliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.Assign(r.Context(), assignDTO.OrderCode, assignDTO.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidRiderID),
			errors.Is(err, order.ErrInvalidOrderCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrRiderUnavailable),
			errors.Is(err, dispatch.ErrRiderOffline),
			errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrOrderFinalized):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryAssignResponse{
		OrderCode:  assignment.OrderCode,
		RiderID:    assignment.RiderID,
		AssignedAt: assignment.AssignedAt,
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
