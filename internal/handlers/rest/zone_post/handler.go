package zone_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paulmach/orb"
	"deliverycore/internal/entities"
	"deliverycore/internal/generated/dto"
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
	var zoneDTO dto.ZoneCreateRequest
	err := json.NewDecoder(r.Body).Decode(&zoneDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ring := make(orb.Ring, 0, len(zoneDTO.Polygon))
	for _, point := range zoneDTO.Polygon {
		ring = append(ring, orb.Point{point.Lng, point.Lat})
	}

	id, err := h.service.CreateZone(r.Context(), entities.DeliveryZone{
		CityID:   zoneDTO.CityID,
		Name:     zoneDTO.Name,
		Polygon:  orb.Polygon{ring},
		BaseFee:  zoneDTO.BaseFee,
		PerKmFee: zoneDTO.PerKmFee,
		MinFee:   zoneDTO.MinFee,
		MaxFee:   zoneDTO.MaxFee,
		IsActive: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, zonefee.ErrInvalidCityID),
			errors.Is(err, zonefee.ErrInvalidZone),
			errors.Is(err, zonefee.ErrInvalidGeoPoint):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ZoneCreateResponse{ID: id}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
