// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"deliverycore/internal/gateway/kafka/events"
	"deliverycore/internal/handlers/rest/delivery_assign_post"
	"deliverycore/internal/handlers/rest/ledger_adjustment_post"
	"deliverycore/internal/handlers/rest/ledger_history_get"
	"deliverycore/internal/handlers/rest/order_create_post"
	"deliverycore/internal/handlers/rest/order_get"
	"deliverycore/internal/handlers/rest/order_transition_post"
	"deliverycore/internal/handlers/rest/penalty_get"
	"deliverycore/internal/handlers/rest/penalty_post"
	"deliverycore/internal/handlers/rest/rider_get"
	"deliverycore/internal/handlers/rest/rider_location_post"
	"deliverycore/internal/handlers/rest/rider_post"
	"deliverycore/internal/handlers/rest/rider_toggle_post"
	"deliverycore/internal/handlers/rest/settlement_generate_post"
	"deliverycore/internal/handlers/rest/settlement_paid_post"
	"deliverycore/internal/handlers/rest/settlement_reverse_post"
	"deliverycore/internal/handlers/rest/settlements_get"
	"deliverycore/internal/handlers/rest/zone_post"
	"deliverycore/internal/handlers/rest/zone_toggle_post"
	"deliverycore/internal/handlers/tasks/ledger_reconcile"
	"deliverycore/internal/handlers/tasks/penalty_cleanup"
	"deliverycore/internal/pkg/config"
	"deliverycore/internal/pkg/factory/abuse_handle"
	"deliverycore/internal/pkg/factory/penalty_policy"
	"deliverycore/internal/repository"
	"deliverycore/internal/repository/ledger"
	"deliverycore/internal/repository/order"
	"deliverycore/internal/repository/penalty"
	"deliverycore/internal/repository/rider"
	"deliverycore/internal/repository/settlement"
	"deliverycore/internal/repository/zone"
	"deliverycore/internal/service/dispatch"
	ledger2 "deliverycore/internal/service/ledger"
	order2 "deliverycore/internal/service/order"
	penalty2 "deliverycore/internal/service/penalty"
	settlement2 "deliverycore/internal/service/settlement"
	"deliverycore/internal/service/zonefee"
	"deliverycore/pkg/background"
	"deliverycore/pkg/logger"
	"deliverycore/pkg/querier"
	"deliverycore/pkg/retrier"
	"deliverycore/pkg/retrier/backoff_adapter"
	"deliverycore/pkg/tx"
	"errors"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	riderRepository := provideRiderRepository(querier)
	ledgerRepository := provideLedgerRepository(querier)
	manager := provideTxManager(pool)
	ledger := provideServiceLedger(ledgerRepository, riderRepository, manager)
	zoneRepository := provideZoneRepository(querier)
	calculator := provideZonefeeService(zoneRepository, cfg)
	penaltyRepository := providePenaltyRepository(querier)
	policy := providePenaltyPolicy(cfg)
	tracker := provideServicePenalty(penaltyRepository, policy, manager)
	publisher := provideEventPublisher(producer, cfg)
	retrier := provideOrderRetrier()
	service := provideServiceOrder(repository, riderRepository, ledger, calculator, tracker, publisher, manager, retrier)
	dispatch := provideServiceDispatch(riderRepository, service, zoneRepository, manager, cfg)
	settlementRepository := provideSettlementRepository(querier)
	settlement := provideServiceSettlement(settlementRepository, repository, ledger, manager)
	penaltyCleanup := providePenaltyCleanupTask(log, tracker, cfg)
	ledgerReconcile := provideLedgerReconcileTask(log, ledger, cfg)
	v := provideTaskList(penaltyCleanup, ledgerReconcile)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceOrder:      service,
		ServiceDispatch:   dispatch,
		ServiceLedger:     ledger,
		ServiceSettlement: settlement,
		ServicePenalty:    tracker,
		ServiceZone:       calculator,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := providePenaltyRepository(querier)
	policy := providePenaltyPolicy(cfg)
	manager := provideTxManager(pool)
	tracker := provideServicePenalty(repository, policy, manager)
	signalHandlerFactory := provideSignalHandlerFactory(tracker)
	kafkaWorkerApp := &KafkaWorkerApp{
		SignalHandlerFactory: signalHandlerFactory,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceDispatch   ServiceDispatch
	ServiceLedger     ServiceLedger
	ServiceSettlement ServiceSettlement
	ServicePenalty    ServicePenalty
	ServiceZone       ServiceZone
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_create_post.Service
	order_transition_post.Service
	order_get.Service
}

type ServiceDispatch interface {
	rider_post.Service
	rider_get.Service
	rider_toggle_post.Service
	rider_location_post.Service
	delivery_assign_post.Service
}

type ServiceLedger interface {
	ledger_adjustment_post.Service
	ledger_history_get.Service
}

type ServiceSettlement interface {
	settlement_generate_post.Service
	settlement_paid_post.Service
	settlement_reverse_post.Service
	settlements_get.Service
}

type ServicePenalty interface {
	penalty_post.Service
	penalty_get.Service
}

type ServiceZone interface {
	zone_post.Service
	zone_toggle_post.Service
}

type KafkaWorkerApp struct {
	SignalHandlerFactory *abuse_handle.SignalHandlerFactory
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideRiderRepository(querier2 *querier.Querier) *rider.Repository {
	return rider.New(querier2)
}

func provideZoneRepository(querier2 *querier.Querier) *zone.Repository {
	return zone.New(querier2)
}

func provideLedgerRepository(querier2 *querier.Querier) *ledger.Repository {
	return ledger.New(querier2)
}

func provideSettlementRepository(querier2 *querier.Querier) *settlement.Repository {
	return settlement.New(querier2)
}

func providePenaltyRepository(querier2 *querier.Querier) *penalty.Repository {
	return penalty.New(querier2)
}

func provideZonefeeService(repository zonefee.ZoneRepository, cfg *config.Config) *zonefee.Calculator {
	return zonefee.New(repository, cfg.Dispatch.ZoneLookupTimeout)
}

func providePenaltyPolicy(cfg *config.Config) *penalty_policy.Policy {
	return penalty_policy.New(
		cfg.Penalty.Window,
		cfg.Penalty.BanDuration,
		cfg.Penalty.QualifyingSignals,
	)
}

func provideServicePenalty(
	repository penalty2.Repository,
	policy penalty2.EscalationPolicy,
	txManager penalty2.TxManager,
) *penalty2.Tracker {
	return penalty2.New(repository, policy, txManager)
}

func provideServiceLedger(
	repository ledger2.Repository,
	riderProvider ledger2.RiderProvider,
	txManager ledger2.TxManager,
) *ledger2.Ledger {
	return ledger2.New(repository, riderProvider, txManager)
}

func provideServiceSettlement(
	repository settlement2.Repository,
	orderAggregator settlement2.OrderAggregator, ledger3 settlement2.LedgerService,

	txManager settlement2.TxManager,
) *settlement2.Settlement {
	return settlement2.New(repository, orderAggregator, ledger3, txManager)
}

// provideOrderRetrier — проигранные serializable-гонки переигрываются с
// экспоненциальным бэкоффом, не более трех повторов.
func provideOrderRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrier.Config{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      3,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, order2.ErrConflict) || repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure)
		},
	})
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *events.Publisher {
	return events.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrder(repository2 order2.Repository,

	riderLocker order2.RiderLocker, ledger3 order2.LedgerService,

	feeService order2.FeeService,
	penaltyGate order2.PenaltyGate,
	publisher order2.EventPublisher,
	txManager order2.TxManager, retrier2 order2.Retrier,

) *order2.Service {
	return order2.New(repository2, riderLocker, ledger3, feeService,
		penaltyGate,
		publisher,
		txManager, retrier2,
	)
}

func provideServiceDispatch(
	riderRepository dispatch.RiderRepository,
	orders dispatch.OrderService,
	zoneRepository dispatch.ZoneRepository,
	txManager dispatch.TxManager,
	cfg *config.Config,
) *dispatch.Dispatch {
	return dispatch.New(
		riderRepository,
		orders,
		zoneRepository,
		txManager,
		cfg.Dispatch.ZoneLookupTimeout,
	)
}

func provideSignalHandlerFactory(penaltyTracker abuse_handle.PenaltyService) *abuse_handle.SignalHandlerFactory {
	return abuse_handle.NewSignalHandlerFactory(penaltyTracker)
}

func providePenaltyCleanupTask(
	log logger.Logger,
	penaltyTracker penalty_cleanup.Service,
	cfg *config.Config,
) *penalty_cleanup.PenaltyCleanup {
	return penalty_cleanup.NewPenaltyCleanup(log, penaltyTracker, cfg.Tasks.PenaltyCleanupInterval)
}

func provideLedgerReconcileTask(
	log logger.Logger, ledger3 ledger_reconcile.Service,

	cfg *config.Config,
) *ledger_reconcile.LedgerReconcile {
	return ledger_reconcile.NewLedgerReconcile(log, ledger3, cfg.Tasks.LedgerReconcileInterval)
}

func provideTaskList(
	penaltyCleanupTask *penalty_cleanup.PenaltyCleanup,
	ledgerReconcileTask *ledger_reconcile.LedgerReconcile,
) []background.Task {
	return []background.Task{
		penaltyCleanupTask,
		ledgerReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
