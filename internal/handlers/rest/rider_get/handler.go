package rider_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderEntity, err := h.service.GetRider(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	riderDTO := dto.Rider{
		ID:              riderEntity.ID,
		Name:            riderEntity.Name,
		Phone:           riderEntity.Phone,
		CityID:          riderEntity.CityID,
		IsOnline:        riderEntity.IsOnline,
		IsAvailable:     riderEntity.IsAvailable,
		CurrentOrder:    riderEntity.CurrentOrder,
		Lat:             riderEntity.Lat,
		Lng:             riderEntity.Lng,
		LocationAt:      riderEntity.LocationAt,
		PayModel:        riderEntity.PayModel.String(),
		CommissionRate:  riderEntity.CommissionRate,
		ShiftStartedAt:  riderEntity.ShiftStartedAt,
		TotalDeliveries: riderEntity.TotalDeliveries,
		AvgRating:       riderEntity.AvgRating,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(riderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
