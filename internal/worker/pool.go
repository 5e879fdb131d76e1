package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/avc/recycle-rewards/internal/service"
	"go.uber.org/zap"
)

// PoolConfig содержит настройки worker pool
type PoolConfig struct {
	Workers       int
	QueueSize     int
	PollInterval  time.Duration // Интервал опроса ленты событий
	SweepInterval time.Duration // Интервал проверки просроченных купонов
	BatchSize     int           // Максимум событий за один опрос
}

// Pool представляет пул воркеров начисления баллов.
// Сканер опрашивает ленту событий системы заказов и складывает события в
// очередь, воркеры превращают их в начисления. Отдельный тикер переводит
// просроченные купоны в статус expired.
type Pool struct {
	cfg         PoolConfig
	queue       chan *domain.OrderEvent
	points      domain.PointsService
	rewardRepo  domain.RewardRepository
	eventClient domain.OrderEventClient
	logger      *zap.Logger
	wg          sync.WaitGroup

	// Последний поставленный в очередь ID события; доступ только из scanner.
	// После рестарта курсор начинается с нуля: повторная доставка безопасна,
	// дубликаты отсекает журнал.
	cursor int64
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	points domain.PointsService,
	rewardRepo domain.RewardRepository,
	eventClient domain.OrderEventClient,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		cfg:         cfg,
		queue:       make(chan *domain.OrderEvent, cfg.QueueSize),
		points:      points,
		rewardRepo:  rewardRepo,
		eventClient: eventClient,
		logger:      logger,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер ленты событий
	p.wg.Add(1)
	go p.scanner(ctx)

	// Запускаем очистку просроченных купонов
	p.wg.Add(1)
	go p.sweeper(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает события из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case event, ok := <-p.queue:
			if !ok {
				return
			}
			p.processEvent(ctx, event)
		}
	}
}

// scanner периодически опрашивает ленту событий системы заказов
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.fetchEvents(ctx)
		}
	}
}

// fetchEvents забирает порцию событий и ставит их в очередь
func (p *Pool) fetchEvents(ctx context.Context) {
	events, err := p.eventClient.GetEvents(ctx, p.cursor, p.cfg.BatchSize)
	if err != nil {
		// Обработка rate limiting
		var rateLimitErr *service.RateLimitError
		if errors.As(err, &rateLimitErr) {
			p.logger.Warn("rate limit exceeded",
				zap.Duration("retry_after", rateLimitErr.RetryAfter),
			)
			time.Sleep(rateLimitErr.RetryAfter)
			return
		}

		p.logger.Error("failed to fetch order events", zap.Error(err))
		return
	}

	for _, event := range events {
		select {
		case p.queue <- event:
			// Курсор двигается только за поставленными в очередь событиями
			p.cursor = event.ID
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, остаток порции заберем на следующем опросе
			p.logger.Warn("queue is full, deferring events", zap.Int64("event_id", event.ID))
			return
		}
	}
}

// sweeper периодически переводит просроченные купоны в статус expired
func (p *Pool) sweeper(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sweeper stopping")
			return
		case <-ticker.C:
			expired, err := p.rewardRepo.ExpireDueRewards(ctx, time.Now())
			if err != nil {
				p.logger.Error("failed to expire due rewards", zap.Error(err))
				continue
			}
			if expired > 0 {
				p.logger.Info("expired due rewards", zap.Int64("count", expired))
			}
		}
	}
}

// processEvent превращает одно событие в начисление баллов
func (p *Pool) processEvent(ctx context.Context, event *domain.OrderEvent) {
	p.logger.Debug("processing event",
		zap.Int64("event_id", event.ID),
		zap.String("type", string(event.Type)),
	)

	var account *domain.Account
	var err error

	switch event.Type {
	case domain.EventOrderCompleted:
		account, err = p.points.GrantForOrder(ctx, event.UserID, event.OrderID, event.Total)
	case domain.EventReviewSubmitted:
		account, err = p.points.GrantForReview(ctx, event.UserID, event.OrderID)
	case domain.EventReferralCompleted:
		account, err = p.points.GrantForReferral(ctx, event.UserID)
	case domain.EventUserRegistered:
		account, err = p.points.GrantForSignup(ctx, event.UserID)
	default:
		p.logger.Warn("unknown event type",
			zap.Int64("event_id", event.ID),
			zap.String("type", string(event.Type)),
		)
		return
	}

	if err != nil {
		// Повторная доставка уже обработанного события
		if errors.Is(err, domain.ErrDuplicateAccrual) {
			p.logger.Debug("skipping duplicate event", zap.Int64("event_id", event.ID))
			return
		}
		p.logger.Error("failed to process event",
			zap.Int64("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
		return
	}

	// Начисление могло не произойти (например, нулевая сумма заказа)
	if account != nil {
		p.logger.Info("event processed",
			zap.Int64("event_id", event.ID),
			zap.Int64("user_id", event.UserID),
			zap.Int64("available_points", account.AvailablePoints),
			zap.String("tier", string(account.Tier)),
		)
	}
}
