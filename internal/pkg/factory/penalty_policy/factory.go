package penalty_policy

import (
	"time"

	"deliverycore/internal/entities"
)

// Policy — конфигурируемая политика эскалации штрафов. Пороговые значения
// задаются через окружение, дефолты подобраны под прод.
type Policy struct {
	window            time.Duration
	banDuration       time.Duration
	qualifyingSignals int64
}

func New(window, banDuration time.Duration, qualifyingSignals int64) *Policy {
	return &Policy{
		window:            window,
		banDuration:       banDuration,
		qualifyingSignals: qualifyingSignals,
	}
}

func (p *Policy) Window() time.Duration {
	return p.window
}

func (p *Policy) BanDuration() time.Duration {
	return p.banDuration
}

func (p *Policy) QualifyingSignals() int64 {
	return p.qualifyingSignals
}

// NextLevel — монотонное повышение на один шаг. banned достигается
// только через порог сигналов либо instant ban, не через NextLevel.
func (p *Policy) NextLevel(current entities.PenaltyLevelType) entities.PenaltyLevelType {
	switch current {
	case entities.PenaltyNone:
		return entities.PenaltyWarning
	case entities.PenaltyWarning:
		return entities.PenaltyRestricted
	case entities.PenaltyRestricted, entities.PenaltyBanned:
		return current
	default:
		return entities.PenaltyWarning
	}
}
