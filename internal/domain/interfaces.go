package domain

import (
	"context"
	"time"
)

// AccountRepository определяет методы для работы со счетами баллов
type AccountRepository interface {
	GetAccount(ctx context.Context, userID int64) (*Account, error)
	// ApplyAccrual атомарно применяет начисление: создает или обновляет счет
	// (с проверкой версии) и добавляет запись в журнал.
	// expectedVersion == 0 означает создание нового счета.
	ApplyAccrual(ctx context.Context, entry *Transaction, tier Tier, expectedVersion int64) (*Account, error)
}

// LedgerRepository определяет методы для чтения журнала баллов
type LedgerRepository interface {
	GetTransactions(ctx context.Context, userID int64) ([]*Transaction, error)
}

// RewardRepository определяет методы для работы с каталогом и обменами
type RewardRepository interface {
	GetReward(ctx context.Context, rewardID int64) (*Reward, error)
	GetActiveRewards(ctx context.Context) ([]*Reward, error)
	GetUserRewards(ctx context.Context, userID int64) ([]*UserReward, error)
	// RedeemWithLock атомарно выполняет обмен: проверяет лимиты и баланс,
	// списывает баллы, создает купон и запись журнала, увеличивает счетчик
	// выдач вознаграждения. Возвращает купон и остаток баллов.
	RedeemWithLock(ctx context.Context, userID int64, reward *Reward, couponCode string, expiresAt time.Time) (*UserReward, int64, error)
	// ExpireDueRewards переводит просроченные купоны в статус expired
	ExpireDueRewards(ctx context.Context, now time.Time) (int64, error)
}

// PointsService определяет методы сервиса начислений
type PointsService interface {
	GrantPoints(ctx context.Context, userID, points int64, source PointsSource, description, orderID string) (*Account, error)
	GrantForOrder(ctx context.Context, userID int64, orderID string, orderTotal float64) (*Account, error)
	GrantForReview(ctx context.Context, userID int64, orderID string) (*Account, error)
	GrantForReferral(ctx context.Context, userID int64) (*Account, error)
	GrantForSignup(ctx context.Context, userID int64) (*Account, error)
	GetAccount(ctx context.Context, userID int64) (*Account, error)
	GetHistory(ctx context.Context, userID int64) ([]*Transaction, error)
}

// RewardsService определяет методы сервиса обмена вознаграждений
type RewardsService interface {
	GetCatalog(ctx context.Context) ([]*Reward, error)
	GetRedeemed(ctx context.Context, userID int64) ([]*UserReward, error)
	Redeem(ctx context.Context, userID, rewardID int64) (*Redemption, error)
}

// OrderEventClient определяет методы получения событий из системы заказов
type OrderEventClient interface {
	GetEvents(ctx context.Context, after int64, limit int) ([]*OrderEvent, error)
}
