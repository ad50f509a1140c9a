package penalty_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"deliverycore/internal/entities"
	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/penalty"
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
	phone := mux.Vars(r)["phone"]

	status, err := h.service.GetStatus(r.Context(), phone)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	history, err := h.service.GetHistory(r.Context(), phone)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := dto.PenaltyStatusResponse{
		Phone:       status.Phone,
		Allowed:     status.Allowed,
		Level:       status.Level.String(),
		BannedUntil: status.BannedUntil,
		History:     toRecordDTOList(history),
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

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, penalty.ErrInvalidPhone):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func toRecordDTOList(records []entities.PenaltyRecord) []dto.PenaltyRecord {
	result := make([]dto.PenaltyRecord, 0, len(records))
	for _, record := range records {
		result = append(result, dto.PenaltyRecord{
			Reason:    record.Reason,
			CreatedAt: record.CreatedAt,
		})
	}
	return result
}
