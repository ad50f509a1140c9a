package ledger_reconcile

import (
	"context"
	"time"

	"deliverycore/pkg/logger"
)

type Service interface {
	VerifyChains(ctx context.Context) (int64, error)
}

type LedgerReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLedgerReconcile(log logger.Logger, service Service, interval time.Duration) *LedgerReconcile {
	return &LedgerReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LedgerReconcile) TTL() time.Duration {
	return l.interval
}

// Do сверяет балансовые цепочки журнала. Разрыв цепочки не чинится
// автоматически, задача только сигнализирует в лог.
func (l *LedgerReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	breaks, err := l.service.VerifyChains(ctxWithTimeout)
	if err != nil {
		return err
	}

	if breaks > 0 {
		l.log.With(
			logger.NewField("chain_breaks", breaks),
		).Error("ledger reconcile found broken balance chains")
	}

	return nil
}

func (l *LedgerReconcile) Info() string {
	return "ledger reconcile"
}
