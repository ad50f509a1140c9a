package rider_location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/dispatch"
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
	var locationDTO dto.RiderLocationRequest
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateLocation(r.Context(), locationDTO.RiderID, locationDTO.Lat, locationDTO.Lng)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidRiderID),
			errors.Is(err, dispatch.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
