package settlements_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"deliverycore/internal/entities"
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
	query := r.URL.Query()

	entityType := entities.LedgerEntityType(query.Get("entity_type"))
	entityID, err := strconv.ParseInt(query.Get("entity_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settlements, err := h.service.List(r.Context(), entityType, entityID)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidEntityType),
			errors.Is(err, settlement.ErrInvalidEntityID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SettlementListResponse{
		Settlements: toSettlementDTOList(settlements),
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

func toSettlementDTOList(settlements []entities.Settlement) []dto.Settlement {
	result := make([]dto.Settlement, 0, len(settlements))
	for _, s := range settlements {
		result = append(result, dto.Settlement{
			ID:              s.ID,
			EntityType:      s.EntityType.String(),
			EntityID:        s.EntityID,
			PeriodStart:     s.PeriodStart,
			PeriodEnd:       s.PeriodEnd,
			GrossSales:      s.GrossSales,
			TotalDeliveries: s.TotalDeliveries,
			NetPayout:       s.NetPayout,
			Status:          s.Status.String(),
			PaidAt:          s.PaidAt,
			CreatedAt:       s.CreatedAt,
		})
	}
	return result
}
