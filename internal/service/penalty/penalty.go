package penalty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliverycore/internal/entities"
)

// Status — ответ на проверку допуска клиента к оформлению заказа.
type Status struct {
	Phone       string
	Allowed     bool
	Level       entities.PenaltyLevelType
	BannedUntil *time.Time
}

type Tracker struct {
	repository Repository
	policy     EscalationPolicy
	txManager  TxManager
}

func New(repository Repository, policy EscalationPolicy, txManager TxManager) *Tracker {
	return &Tracker{
		repository: repository,
		policy:     policy,
		txManager:  txManager,
	}
}

// RecordAbuseSignal дописывает нарушение в историю и эскалирует уровень.
// Достижение порога квалифицирующих сигналов в скользящем окне либо
// instantBan переводят клиента в banned с banned_until = now + ban_duration.
// Иначе уровень растет монотонно: none -> warning -> restricted.
func (t *Tracker) RecordAbuseSignal(ctx context.Context, phone, reason string, instantBan bool) (*entities.CustomerPenalty, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if reason == "" {
		return nil, ErrInvalidReason
	}

	var result *entities.CustomerPenalty
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		current, err := t.repository.GetByPhone(ctx, phone)
		if err != nil && !errors.Is(err, ErrPenaltyNotFound) {
			return fmt.Errorf("get penalty: %w", err)
		}
		if current == nil {
			current = &entities.CustomerPenalty{
				Phone:     phone,
				Level:     entities.PenaltyNone,
				CreatedAt: now,
			}
		}

		err = t.repository.AppendRecord(ctx, entities.PenaltyRecord{
			Phone:     phone,
			Reason:    reason,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("append penalty record: %w", err)
		}

		recent, err := t.repository.CountRecordsSince(ctx, phone, now.Add(-t.policy.Window()))
		if err != nil {
			return fmt.Errorf("count recent records: %w", err)
		}

		next := *current
		next.TotalPenalties = current.TotalPenalties + 1
		next.UpdatedAt = now

		if instantBan || recent >= t.policy.QualifyingSignals() {
			bannedUntil := now.Add(t.policy.BanDuration())
			next.Level = entities.PenaltyBanned
			next.BannedUntil = &bannedUntil
		} else {
			next.Level = t.policy.NextLevel(effectiveLevel(current, now))
			next.BannedUntil = nil
		}

		result, err = t.repository.Upsert(ctx, next)
		if err != nil {
			return fmt.Errorf("upsert penalty: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetLevel — ручной override уполномоченным актором, включая понижение.
func (t *Tracker) SetLevel(ctx context.Context, phone string, level entities.PenaltyLevelType, actor entities.ActorRole) (*entities.CustomerPenalty, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !isValidLevel(level.String()) {
		return nil, ErrInvalidLevel
	}
	if actor != entities.ActorOperator && actor != entities.ActorSystem {
		return nil, ErrNotAuthorized
	}

	var result *entities.CustomerPenalty
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		current, err := t.repository.GetByPhone(ctx, phone)
		if err != nil && !errors.Is(err, ErrPenaltyNotFound) {
			return fmt.Errorf("get penalty: %w", err)
		}
		if current == nil {
			current = &entities.CustomerPenalty{
				Phone:     phone,
				CreatedAt: now,
			}
		}

		next := *current
		next.Level = level
		next.UpdatedAt = now
		if level == entities.PenaltyBanned {
			bannedUntil := now.Add(t.policy.BanDuration())
			next.BannedUntil = &bannedUntil
		} else {
			next.BannedUntil = nil
		}

		result, err = t.repository.Upsert(ctx, next)
		if err != nil {
			return fmt.Errorf("upsert penalty: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CheckAllowed блокирует только активный бан. Истекший бан гаснет лениво
// при чтении, запись поправит периодическая задача либо следующая мутация.
func (t *Tracker) CheckAllowed(ctx context.Context, phone string) (bool, error) {
	status, err := t.GetStatus(ctx, phone)
	if err != nil {
		return false, err
	}
	return status.Allowed, nil
}

func (t *Tracker) GetStatus(ctx context.Context, phone string) (*Status, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	current, err := t.repository.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrPenaltyNotFound) {
			return &Status{Phone: phone, Allowed: true, Level: entities.PenaltyNone}, nil
		}
		return nil, fmt.Errorf("get penalty: %w", err)
	}

	now := time.Now().UTC()
	level := effectiveLevel(current, now)

	status := &Status{
		Phone:   phone,
		Level:   level,
		Allowed: level != entities.PenaltyBanned,
	}
	if level == entities.PenaltyBanned {
		status.BannedUntil = current.BannedUntil
	}
	return status, nil
}

func (t *Tracker) GetHistory(ctx context.Context, phone string) ([]entities.PenaltyRecord, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	records, err := t.repository.ListRecords(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("list penalty records: %w", err)
	}
	return records, nil
}

// ExpireBans — write-back истекших банов для фоновой задачи.
func (t *Tracker) ExpireBans(ctx context.Context) (int64, error) {
	expired, err := t.repository.ExpireBans(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire bans: %w", err)
	}
	return expired, nil
}

// effectiveLevel гасит бан с истекшим banned_until без записи в БД.
func effectiveLevel(penalty *entities.CustomerPenalty, now time.Time) entities.PenaltyLevelType {
	if penalty.Level == entities.PenaltyBanned &&
		penalty.BannedUntil != nil &&
		!now.Before(*penalty.BannedUntil) {
		return entities.PenaltyNone
	}
	return penalty.Level
}
