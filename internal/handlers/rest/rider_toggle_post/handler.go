package rider_toggle_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/dispatch"
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
	var toggleDTO dto.RiderToggleRequest
	err := json.NewDecoder(r.Body).Decode(&toggleDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ToggleOnline(r.Context(), toggleDTO.RiderID, toggleDTO.Online)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrActiveOrderInProgress):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RiderToggleResponse{
		RiderID:       result.RiderID,
		IsOnline:      result.IsOnline,
		IsAvailable:   result.IsAvailable,
		OutOfCoverage: result.OutOfCoverage,
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
