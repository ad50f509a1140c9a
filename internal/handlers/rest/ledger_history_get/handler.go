package ledger_history_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	entityType := entities.LedgerEntityType(vars["entityType"])
	entityID, err := strconv.ParseInt(vars["entityID"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := h.service.GetHistory(r.Context(), entityType, entityID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), entityType, entityID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := dto.LedgerHistoryResponse{
		Balance: balance,
		Entries: toEntryDTOList(entries),
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
	case errors.Is(err, ledger.ErrInvalidEntityType),
		errors.Is(err, ledger.ErrInvalidEntityID):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func toEntryDTOList(entries []entities.LedgerEntry) []dto.LedgerEntry {
	result := make([]dto.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.LedgerEntry{
			ID:              entry.ID,
			EntityType:      entry.EntityType.String(),
			EntityID:        entry.EntityID,
			TransactionType: entry.TransactionType.String(),
			Amount:          entry.Amount,
			BalanceBefore:   entry.BalanceBefore,
			BalanceAfter:    entry.BalanceAfter,
			OrderCode:       entry.OrderCode,
			Notes:           entry.Notes,
			CreatedAt:       entry.CreatedAt,
		})
	}
	return result
}
