package zone_toggle_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/zonefee"
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
	var toggleDTO dto.ZoneToggleRequest
	err := json.NewDecoder(r.Body).Decode(&toggleDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SetZoneActive(r.Context(), toggleDTO.ZoneID, toggleDTO.Active)
	if err != nil {
		switch {
		case errors.Is(err, zonefee.ErrInvalidZone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, zonefee.ErrZoneNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
