//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"errors"
	"time"

	eventsGateway "deliverycore/internal/gateway/kafka/events"
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

	ledgerRepo "deliverycore/internal/repository/ledger"
	orderRepo "deliverycore/internal/repository/order"
	penaltyRepo "deliverycore/internal/repository/penalty"
	riderRepo "deliverycore/internal/repository/rider"
	settlementRepo "deliverycore/internal/repository/settlement"
	zoneRepo "deliverycore/internal/repository/zone"

	dispatchService "deliverycore/internal/service/dispatch"
	ledgerService "deliverycore/internal/service/ledger"
	orderService "deliverycore/internal/service/order"
	penaltyService "deliverycore/internal/service/penalty"
	settlementService "deliverycore/internal/service/settlement"
	zonefeeService "deliverycore/internal/service/zonefee"

	"deliverycore/pkg/background"
	"deliverycore/pkg/logger"
	"deliverycore/pkg/querier"
	retrierconfig "deliverycore/pkg/retrier"
	"deliverycore/pkg/retrier/backoff_adapter"
	"deliverycore/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideRiderRepository,
		provideZoneRepository,
		provideLedgerRepository,
		provideSettlementRepository,
		providePenaltyRepository,

		provideZonefeeService,
		providePenaltyPolicy,
		provideServicePenalty,
		provideServiceLedger,
		provideServiceSettlement,
		provideOrderRetrier,
		provideEventPublisher,
		provideServiceOrder,
		provideServiceDispatch,

		providePenaltyCleanupTask,
		provideLedgerReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Settlement)),
		wire.Bind(new(ServicePenalty), new(*penaltyService.Tracker)),
		wire.Bind(new(ServiceZone), new(*zonefeeService.Calculator)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.RiderLocker), new(*riderRepo.Repository)),
		wire.Bind(new(orderService.LedgerService), new(*ledgerService.Ledger)),
		wire.Bind(new(orderService.FeeService), new(*zonefeeService.Calculator)),
		wire.Bind(new(orderService.PenaltyGate), new(*penaltyService.Tracker)),
		wire.Bind(new(orderService.EventPublisher), new(*eventsGateway.Publisher)),
		wire.Bind(new(orderService.Retrier), new(*backoff_adapter.Retrier)),

		wire.Bind(new(dispatchService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(dispatchService.OrderService), new(*orderService.Service)),
		wire.Bind(new(dispatchService.ZoneRepository), new(*zoneRepo.Repository)),

		wire.Bind(new(ledgerService.Repository), new(*ledgerRepo.Repository)),
		wire.Bind(new(ledgerService.RiderProvider), new(*riderRepo.Repository)),

		wire.Bind(new(settlementService.Repository), new(*settlementRepo.Repository)),
		wire.Bind(new(settlementService.OrderAggregator), new(*orderRepo.Repository)),
		wire.Bind(new(settlementService.LedgerService), new(*ledgerService.Ledger)),

		wire.Bind(new(penaltyService.Repository), new(*penaltyRepo.Repository)),
		wire.Bind(new(penaltyService.EscalationPolicy), new(*penalty_policy.Policy)),

		wire.Bind(new(zonefeeService.ZoneRepository), new(*zoneRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),
		wire.Bind(new(penaltyService.TxManager), new(*tx.Manager)),

		wire.Bind(new(penalty_cleanup.Service), new(*penaltyService.Tracker)),
		wire.Bind(new(ledger_reconcile.Service), new(*ledgerService.Ledger)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	SignalHandlerFactory *abuse_handle.SignalHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePenaltyRepository,
		providePenaltyPolicy,
		provideServicePenalty,
		provideSignalHandlerFactory,

		wire.Bind(new(penaltyService.Repository), new(*penaltyRepo.Repository)),
		wire.Bind(new(penaltyService.EscalationPolicy), new(*penalty_policy.Policy)),
		wire.Bind(new(penaltyService.TxManager), new(*tx.Manager)),
		wire.Bind(new(abuse_handle.PenaltyService), new(*penaltyService.Tracker)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideSettlementRepository(querier *querier.Querier) *settlementRepo.Repository {
	return settlementRepo.New(querier)
}

func providePenaltyRepository(querier *querier.Querier) *penaltyRepo.Repository {
	return penaltyRepo.New(querier)
}

func provideZonefeeService(repository zonefeeService.ZoneRepository, cfg *config.Config) *zonefeeService.Calculator {
	return zonefeeService.New(repository, cfg.Dispatch.ZoneLookupTimeout)
}

func providePenaltyPolicy(cfg *config.Config) *penalty_policy.Policy {
	return penalty_policy.New(
		cfg.Penalty.Window,
		cfg.Penalty.BanDuration,
		cfg.Penalty.QualifyingSignals,
	)
}

func provideServicePenalty(
	repository penaltyService.Repository,
	policy penaltyService.EscalationPolicy,
	txManager penaltyService.TxManager,
) *penaltyService.Tracker {
	return penaltyService.New(repository, policy, txManager)
}

func provideServiceLedger(
	repository ledgerService.Repository,
	riderProvider ledgerService.RiderProvider,
	txManager ledgerService.TxManager,
) *ledgerService.Ledger {
	return ledgerService.New(repository, riderProvider, txManager)
}

func provideServiceSettlement(
	repository settlementService.Repository,
	orderAggregator settlementService.OrderAggregator,
	ledger settlementService.LedgerService,
	txManager settlementService.TxManager,
) *settlementService.Settlement {
	return settlementService.New(repository, orderAggregator, ledger, txManager)
}

// provideOrderRetrier — проигранные serializable-гонки переигрываются с
// экспоненциальным бэкоффом, не более трех повторов.
func provideOrderRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      3,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, orderService.ErrConflict) ||
				repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure)
		},
	})
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.Publisher {
	return eventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrder(
	repository orderService.Repository,
	riderLocker orderService.RiderLocker,
	ledger orderService.LedgerService,
	feeService orderService.FeeService,
	penaltyGate orderService.PenaltyGate,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
	retrier orderService.Retrier,
) *orderService.Service {
	return orderService.New(
		repository,
		riderLocker,
		ledger,
		feeService,
		penaltyGate,
		publisher,
		txManager,
		retrier,
	)
}

func provideServiceDispatch(
	riderRepository dispatchService.RiderRepository,
	orders dispatchService.OrderService,
	zoneRepository dispatchService.ZoneRepository,
	txManager dispatchService.TxManager,
	cfg *config.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
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
	log logger.Logger,
	ledger ledger_reconcile.Service,
	cfg *config.Config,
) *ledger_reconcile.LedgerReconcile {
	return ledger_reconcile.NewLedgerReconcile(log, ledger, cfg.Tasks.LedgerReconcileInterval)
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
