package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/avc/recycle-rewards/internal/utils/coupon"
)

// RewardRepository определяет методы для работы с каталогом и обменами.
type RewardRepository interface {
	GetReward(ctx context.Context, rewardID int64) (*domain.Reward, error)
	GetActiveRewards(ctx context.Context) ([]*domain.Reward, error)
	GetUserRewards(ctx context.Context, userID int64) ([]*domain.UserReward, error)
	RedeemWithLock(ctx context.Context, userID int64, reward *domain.Reward, couponCode string, expiresAt time.Time) (*domain.UserReward, int64, error)
	ExpireDueRewards(ctx context.Context, now time.Time) (int64, error)
}

// RewardsService реализует процессор обменов
type RewardsService struct {
	rewardRepo RewardRepository
	now        func() time.Time
}

// NewRewardsService создает новый RewardsService
func NewRewardsService(rewardRepo RewardRepository) *RewardsService {
	return &RewardsService{
		rewardRepo: rewardRepo,
		now:        time.Now,
	}
}

// GetCatalog получает активные позиции каталога
func (s *RewardsService) GetCatalog(ctx context.Context) ([]*domain.Reward, error) {
	rewards, err := s.rewardRepo.GetActiveRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("rewards service: failed to get catalog: %w", err)
	}

	return rewards, nil
}

// GetRedeemed получает купоны пользователя
func (s *RewardsService) GetRedeemed(ctx context.Context, userID int64) ([]*domain.UserReward, error) {
	userRewards, err := s.rewardRepo.GetUserRewards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("rewards service: failed to get redeemed rewards for user %d: %w", userID, err)
	}

	return userRewards, nil
}

// Redeem обменивает баллы пользователя на вознаграждение.
// Неактивное вознаграждение неотличимо от отсутствующего. Стоимость
// фиксируется на момент обмена. Все эффекты обмена применяются атомарно в
// репозитории; при коллизии кода купона код генерируется заново.
func (s *RewardsService) Redeem(ctx context.Context, userID, rewardID int64) (*domain.Redemption, error) {
	reward, err := s.rewardRepo.GetReward(ctx, rewardID)
	if err != nil {
		if errors.Is(err, domain.ErrRewardNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("rewards service: failed to get reward %d: %w", rewardID, err)
	}

	if !reward.IsActive {
		return nil, domain.ErrRewardNotFound
	}

	expiresAt := s.now().Add(time.Duration(reward.ValidityDays) * 24 * time.Hour)

	const couponAttempts = 2
	var lastErr error
	for attempt := 0; attempt < couponAttempts; attempt++ {
		code := coupon.Generate()

		userReward, remaining, err := s.rewardRepo.RedeemWithLock(ctx, userID, reward, code, expiresAt)
		if err == nil {
			return &domain.Redemption{
				UserReward:      userReward,
				RemainingPoints: remaining,
			}, nil
		}
		if errors.Is(err, domain.ErrCouponCollision) {
			lastErr = err
			continue
		}
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrLimitExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("rewards service: failed to redeem reward %d for user %d: %w", rewardID, userID, err)
	}

	return nil, fmt.Errorf("rewards service: failed to generate unique coupon for reward %d: %w", rewardID, lastErr)
}
