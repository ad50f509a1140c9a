package settlement_generate_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var generateDTO dto.SettlementGenerateRequest
	err := json.NewDecoder(r.Body).Decode(&generateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Generate(
		r.Context(),
		entities.LedgerEntityType(generateDTO.EntityType),
		generateDTO.EntityID,
		generateDTO.PeriodStart,
		generateDTO.PeriodEnd,
	)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidEntityType),
			errors.Is(err, settlement.ErrInvalidEntityID),
			errors.Is(err, settlement.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, settlement.ErrDuplicatePeriod):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toSettlementDTO(result)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toSettlementDTO(s *entities.Settlement) dto.Settlement {
	return dto.Settlement{
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
	}
}
