package penalty_cleanup

import (
	"context"
	"time"

	"deliverycore/pkg/logger"
)

type Service interface {
	ExpireBans(ctx context.Context) (int64, error)
}

type PenaltyCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPenaltyCleanup(log logger.Logger, service Service, interval time.Duration) *PenaltyCleanup {
	return &PenaltyCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PenaltyCleanup) TTL() time.Duration {
	return p.interval
}

func (p *PenaltyCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.ExpireBans(ctxWithTimeout)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("expired_bans", rowsAffected),
		).Info("penalty cleanup")
	}

	return err
}

func (p *PenaltyCleanup) Info() string {
	return "penalty cleanup"
}
