package ledger_adjustment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"deliverycore/internal/entities"
	"deliverycore/internal/generated/dto"
	"deliverycore/internal/service/ledger"
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
	var adjustmentDTO dto.LedgerAdjustmentRequest
	err := json.NewDecoder(r.Body).Decode(&adjustmentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entry, err := h.service.PostEntry(r.Context(), entities.LedgerPost{
		EntityType:      entities.LedgerEntityType(adjustmentDTO.EntityType),
		EntityID:        adjustmentDTO.EntityID,
		TransactionType: entities.TxAdjustment,
		Amount:          adjustmentDTO.Amount,
		Notes:           adjustmentDTO.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidEntityType),
			errors.Is(err, ledger.ErrInvalidEntityID),
			errors.Is(err, ledger.ErrInvalidTransactionType),
			errors.Is(err, ledger.ErrNoOpTransaction):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ledger.ErrInsufficientBalance):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toEntryDTO(entry)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toEntryDTO(e *entities.LedgerEntry) dto.LedgerEntry {
	return dto.LedgerEntry{
		ID:              e.ID,
		EntityType:      e.EntityType.String(),
		EntityID:        e.EntityID,
		TransactionType: e.TransactionType.String(),
		Amount:          e.Amount,
		BalanceBefore:   e.BalanceBefore,
		BalanceAfter:    e.BalanceAfter,
		OrderCode:       e.OrderCode,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}
