package penalty_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var penaltyDTO dto.PenaltyRequest
	err := json.NewDecoder(r.Body).Decode(&penaltyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var result *entities.CustomerPenalty
	if penaltyDTO.Level != nil {
		// Ручная установка уровня оператором, минуя эскалацию.
		actor := entities.ActorSystem
		if penaltyDTO.Actor != nil {
			actor = entities.ActorRole(*penaltyDTO.Actor)
		}
		result, err = h.service.SetLevel(
			r.Context(),
			penaltyDTO.Phone,
			entities.PenaltyLevelType(*penaltyDTO.Level),
			actor,
		)
	} else {
		instantBan := penaltyDTO.InstantBan != nil && *penaltyDTO.InstantBan
		result, err = h.service.RecordAbuseSignal(r.Context(), penaltyDTO.Phone, penaltyDTO.Reason, instantBan)
	}
	if err != nil {
		switch {
		case errors.Is(err, penalty.ErrInvalidPhone),
			errors.Is(err, penalty.ErrInvalidReason),
			errors.Is(err, penalty.ErrInvalidLevel):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, penalty.ErrNotAuthorized):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Penalty{
		Phone:          result.Phone,
		Level:          result.Level.String(),
		TotalPenalties: result.TotalPenalties,
		BannedUntil:    result.BannedUntil,
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
