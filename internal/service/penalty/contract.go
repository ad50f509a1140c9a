//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=penalty_test
package penalty

import (
	"context"
	"time"

	"deliverycore/internal/entities"
)

type Repository interface {
	GetByPhone(ctx context.Context, phone string) (*entities.CustomerPenalty, error)
	Upsert(ctx context.Context, penalty entities.CustomerPenalty) (*entities.CustomerPenalty, error)

	AppendRecord(ctx context.Context, record entities.PenaltyRecord) error
	ListRecords(ctx context.Context, phone string) ([]entities.PenaltyRecord, error)
	CountRecordsSince(ctx context.Context, phone string, since time.Time) (int64, error)

	// ExpireBans — периодический write-back: снимает истекшие баны.
	ExpireBans(ctx context.Context, now time.Time) (int64, error)
}

// EscalationPolicy — порог эскалации, окно и длительность бана.
// Значения приходят из конфигурации, не из кода.
type EscalationPolicy interface {
	Window() time.Duration
	BanDuration() time.Duration
	QualifyingSignals() int64
	NextLevel(current entities.PenaltyLevelType) entities.PenaltyLevelType
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
