package settlement_paid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/settlement"
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
	var paidDTO dto.SettlementPaidRequest
	err := json.NewDecoder(r.Body).Decode(&paidDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.MarkPaid(r.Context(), paidDTO.SettlementID)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrSettlementNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, settlement.ErrAlreadyPaid):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Settlement{
		ID:              result.ID,
		EntityType:      result.EntityType.String(),
		EntityID:        result.EntityID,
		PeriodStart:     result.PeriodStart,
		PeriodEnd:       result.PeriodEnd,
		GrossSales:      result.GrossSales,
		TotalDeliveries: result.TotalDeliveries,
		NetPayout:       result.NetPayout,
		Status:          result.Status.String(),
		PaidAt:          result.PaidAt,
		CreatedAt:       result.CreatedAt,
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
