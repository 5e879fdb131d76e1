package app

import (
	"github.com/avc/recycle-rewards/internal/config"
	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/avc/recycle-rewards/internal/handlers"
	"github.com/avc/recycle-rewards/internal/repository/postgres"
	"github.com/avc/recycle-rewards/internal/service"
	"github.com/avc/recycle-rewards/internal/utils/jwt"
	"github.com/avc/recycle-rewards/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	account domain.AccountRepository
	ledger  domain.LedgerRepository
	reward  domain.RewardRepository
}

// services содержит все сервисы приложения
type services struct {
	points  domain.PointsService
	rewards domain.RewardsService
	events  domain.OrderEventClient
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	points  *handlers.PointsHandler
	rewards *handlers.RewardsHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		account: postgres.NewAccountRepository(dbPool),
		ledger:  postgres.NewLedgerRepository(dbPool),
		reward:  postgres.NewRewardRepository(dbPool),
	}

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	pointsConfig := service.PointsServiceConfig{
		Tiers: service.TierThresholds{
			Silver:   cfg.TierSilver,
			Gold:     cfg.TierGold,
			Platinum: cfg.TierPlatinum,
		},
		PurchaseRate:  cfg.PurchaseRate,
		ReviewBonus:   cfg.ReviewBonus,
		ReferralBonus: cfg.ReferralBonus,
		SignupBonus:   cfg.SignupBonus,
		MaxRetries:    cfg.AccrualMaxRetries,
	}
	svcs := &services{
		points:  service.NewPointsService(repos.account, repos.ledger, pointsConfig),
		rewards: service.NewRewardsService(repos.reward),
		events:  service.NewOrderEventClient(cfg.OrderSystemAddress),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		points:  handlers.NewPointsHandler(svcs.points, logger),
		rewards: handlers.NewRewardsHandler(svcs.rewards, logger),
		health:  handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool
	workerPoolConfig := worker.PoolConfig{
		Workers:       cfg.WorkerPoolSize,
		QueueSize:     cfg.WorkerQueueSize,
		PollInterval:  cfg.WorkerPollInterval,
		SweepInterval: cfg.SweepInterval,
		BatchSize:     cfg.EventBatchSize,
	}
	workerPool := worker.NewPool(workerPoolConfig, svcs.points, repos.reward, svcs.events, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
