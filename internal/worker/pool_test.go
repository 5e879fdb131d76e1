package worker

import (
	"context"
	"testing"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
	domainmocks "github.com/avc/recycle-rewards/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testPool(t *testing.T) (*Pool, *domainmocks.PointsServiceMock, *domainmocks.RewardRepositoryMock, *domainmocks.OrderEventClientMock) {
	t.Helper()

	mockPoints := domainmocks.NewPointsServiceMock(t)
	mockRewardRepo := domainmocks.NewRewardRepositoryMock(t)
	mockEventClient := domainmocks.NewOrderEventClientMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := PoolConfig{
		Workers:       1,
		QueueSize:     10,
		PollInterval:  time.Second,
		SweepInterval: time.Second,
		BatchSize:     100,
	}

	return NewPool(cfg, mockPoints, mockRewardRepo, mockEventClient, logger), mockPoints, mockRewardRepo, mockEventClient
}

func TestPool_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Order completed", func(t *testing.T) {
		pool, mockPoints, _, _ := testPool(t)

		account := &domain.Account{UserID: 1, TotalPoints: 12, AvailablePoints: 12, Tier: domain.TierBronze}
		mockPoints.EXPECT().GrantForOrder(mock.Anything, int64(1), "order-1", 120.50).Return(account, nil).Once()

		pool.processEvent(ctx, &domain.OrderEvent{ID: 1, Type: domain.EventOrderCompleted, UserID: 1, OrderID: "order-1", Total: 120.50})
	})

	t.Run("Review submitted", func(t *testing.T) {
		pool, mockPoints, _, _ := testPool(t)

		account := &domain.Account{UserID: 2, TotalPoints: 10, AvailablePoints: 10, Tier: domain.TierBronze}
		mockPoints.EXPECT().GrantForReview(mock.Anything, int64(2), "order-2").Return(account, nil).Once()

		pool.processEvent(ctx, &domain.OrderEvent{ID: 2, Type: domain.EventReviewSubmitted, UserID: 2, OrderID: "order-2"})
	})

	t.Run("Referral completed", func(t *testing.T) {
		pool, mockPoints, _, _ := testPool(t)

		account := &domain.Account{UserID: 3, TotalPoints: 50, AvailablePoints: 50, Tier: domain.TierBronze}
		mockPoints.EXPECT().GrantForReferral(mock.Anything, int64(3)).Return(account, nil).Once()

		pool.processEvent(ctx, &domain.OrderEvent{ID: 3, Type: domain.EventReferralCompleted, UserID: 3})
	})

	t.Run("User registered", func(t *testing.T) {
		pool, mockPoints, _, _ := testPool(t)

		account := &domain.Account{UserID: 4, TotalPoints: 25, AvailablePoints: 25, Tier: domain.TierBronze}
		mockPoints.EXPECT().GrantForSignup(mock.Anything, int64(4)).Return(account, nil).Once()

		pool.processEvent(ctx, &domain.OrderEvent{ID: 4, Type: domain.EventUserRegistered, UserID: 4})
	})

	t.Run("Duplicate event skipped", func(t *testing.T) {
		pool, mockPoints, _, _ := testPool(t)

		mockPoints.EXPECT().GrantForOrder(mock.Anything, int64(1), "order-1", 120.50).
			Return(nil, domain.ErrDuplicateAccrual).Once()

		pool.processEvent(ctx, &domain.OrderEvent{ID: 5, Type: domain.EventOrderCompleted, UserID: 1, OrderID: "order-1", Total: 120.50})
	})

	t.Run("Zero accrual produces no account", func(t *testing.T) {
		pool, mockPoints, _, _ := testPool(t)

		mockPoints.EXPECT().GrantForOrder(mock.Anything, int64(1), "order-2", 5.00).Return(nil, nil).Once()

		pool.processEvent(ctx, &domain.OrderEvent{ID: 6, Type: domain.EventOrderCompleted, UserID: 1, OrderID: "order-2", Total: 5.00})
	})

	t.Run("Unknown event type ignored", func(t *testing.T) {
		pool, _, _, _ := testPool(t)

		pool.processEvent(ctx, &domain.OrderEvent{ID: 7, Type: domain.OrderEventType("mystery"), UserID: 1})
	})
}

func TestPool_FetchEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Events enqueued and cursor advanced", func(t *testing.T) {
		pool, _, _, mockEventClient := testPool(t)

		events := []*domain.OrderEvent{
			{ID: 1, Type: domain.EventOrderCompleted, UserID: 1, OrderID: "order-1", Total: 100},
			{ID: 2, Type: domain.EventUserRegistered, UserID: 2},
		}
		mockEventClient.EXPECT().GetEvents(mock.Anything, int64(0), 100).Return(events, nil).Once()

		pool.fetchEvents(ctx)

		assert.Equal(t, int64(2), pool.cursor)
		assert.Len(t, pool.queue, 2)
	})

	t.Run("No new events", func(t *testing.T) {
		pool, _, _, mockEventClient := testPool(t)

		mockEventClient.EXPECT().GetEvents(mock.Anything, int64(0), 100).Return(nil, nil).Once()

		pool.fetchEvents(ctx)

		assert.Zero(t, pool.cursor)
		assert.Empty(t, pool.queue)
	})

	t.Run("Full queue defers remainder", func(t *testing.T) {
		mockPoints := domainmocks.NewPointsServiceMock(t)
		mockRewardRepo := domainmocks.NewRewardRepositoryMock(t)
		mockEventClient := domainmocks.NewOrderEventClientMock(t)
		logger, _ := zap.NewDevelopment()

		cfg := PoolConfig{Workers: 1, QueueSize: 1, PollInterval: time.Second, SweepInterval: time.Second, BatchSize: 100}
		pool := NewPool(cfg, mockPoints, mockRewardRepo, mockEventClient, logger)

		events := []*domain.OrderEvent{
			{ID: 1, Type: domain.EventUserRegistered, UserID: 1},
			{ID: 2, Type: domain.EventUserRegistered, UserID: 2},
		}
		mockEventClient.EXPECT().GetEvents(mock.Anything, int64(0), 100).Return(events, nil).Once()

		pool.fetchEvents(ctx)

		// Курсор останавливается на последнем поставленном событии
		assert.Equal(t, int64(1), pool.cursor)
		assert.Len(t, pool.queue, 1)
	})

	t.Run("Fetch error keeps cursor", func(t *testing.T) {
		pool, _, _, mockEventClient := testPool(t)

		mockEventClient.EXPECT().GetEvents(mock.Anything, int64(0), 100).Return(nil, assert.AnError).Once()

		pool.fetchEvents(ctx)

		assert.Zero(t, pool.cursor)
		assert.Empty(t, pool.queue)
	})
}

func TestPool_StartStop(t *testing.T) {
	pool, mockPoints, _, _ := testPool(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	account := &domain.Account{UserID: 1, TotalPoints: 25, AvailablePoints: 25, Tier: domain.TierBronze}
	mockPoints.EXPECT().GrantForSignup(mock.Anything, int64(1)).Return(account, nil).Once()

	pool.Start(ctx)

	pool.queue <- &domain.OrderEvent{ID: 1, Type: domain.EventUserRegistered, UserID: 1}

	// Даем воркеру время обработать событие
	time.Sleep(100 * time.Millisecond)

	cancel()
	pool.Stop()
}
