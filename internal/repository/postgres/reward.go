package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RewardRepository реализует domain.RewardRepository
type RewardRepository struct {
	db DBTX
}

// NewRewardRepository создает новый RewardRepository
func NewRewardRepository(db DBTX) *RewardRepository {
	return &RewardRepository{db: db}
}

const rewardColumns = `id, name, description, points_cost, per_user_limit, total_limit,
		        validity_days, is_active, total_redeemed, created_at`

// GetReward получает вознаграждение по ID
func (r *RewardRepository) GetReward(ctx context.Context, rewardID int64) (*domain.Reward, error) {
	reward := &domain.Reward{}

	err := r.db.QueryRow(ctx,
		`SELECT `+rewardColumns+`
		 FROM rewards
		 WHERE id = $1`,
		rewardID,
	).Scan(
		&reward.ID, &reward.Name, &reward.Description, &reward.PointsCost,
		&reward.PerUserLimit, &reward.TotalLimit, &reward.ValidityDays,
		&reward.IsActive, &reward.TotalRedeemed, &reward.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("repository: failed to get reward %d: %w", rewardID, err)
	}

	return reward, nil
}

// GetActiveRewards получает активные позиции каталога
func (r *RewardRepository) GetActiveRewards(ctx context.Context) ([]*domain.Reward, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+rewardColumns+`
		 FROM rewards
		 WHERE is_active
		 ORDER BY points_cost`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get active rewards: %w", err)
	}
	defer rows.Close()

	var rewards []*domain.Reward
	for rows.Next() {
		reward := &domain.Reward{}
		err := rows.Scan(
			&reward.ID, &reward.Name, &reward.Description, &reward.PointsCost,
			&reward.PerUserLimit, &reward.TotalLimit, &reward.ValidityDays,
			&reward.IsActive, &reward.TotalRedeemed, &reward.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan reward: %w", err)
		}
		rewards = append(rewards, reward)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rewards: %w", err)
	}

	return rewards, nil
}

// GetUserRewards получает купоны пользователя, новые первыми
func (r *RewardRepository) GetUserRewards(ctx context.Context, userID int64) ([]*domain.UserReward, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, reward_id, points_used, coupon_code, status, redeemed_at, expires_at
		 FROM user_rewards
		 WHERE user_id = $1
		 ORDER BY redeemed_at DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get user rewards for user %d: %w", userID, err)
	}
	defer rows.Close()

	var userRewards []*domain.UserReward
	for rows.Next() {
		ur := &domain.UserReward{}
		err := rows.Scan(
			&ur.ID, &ur.UserID, &ur.RewardID, &ur.PointsUsed,
			&ur.CouponCode, &ur.Status, &ur.RedeemedAt, &ur.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user reward: %w", err)
		}
		userRewards = append(userRewards, ur)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating user rewards: %w", err)
	}

	return userRewards, nil
}

// RedeemWithLock выполняет обмен в одной транзакции БД под advisory lock по
// пользователю. Лимит на пользователя проверяется внутри блокировки, баланс и
// общий лимит вознаграждения проверяются условными UPDATE с подсчетом строк,
// так что частичный обмен невозможен.
func (r *RewardRepository) RedeemWithLock(ctx context.Context, userID int64, reward *domain.Reward, couponCode string, expiresAt time.Time) (*domain.UserReward, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to begin redemption for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Сериализация обменов одного пользователя
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	// Лимит на пользователя: под блокировкой count-then-insert безопасен
	var redeemedCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_rewards WHERE user_id = $1 AND reward_id = $2`,
		userID, reward.ID,
	).Scan(&redeemedCount)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count redemptions for user %d: %w", userID, err)
	}

	if redeemedCount >= reward.PerUserLimit {
		return nil, 0, domain.ErrLimitExceeded
	}

	// Списание баллов: отсутствие счета и нехватка баллов неразличимы
	// для вызывающего, в обоих случаях платить нечем
	var remaining int64
	err = tx.QueryRow(ctx,
		`UPDATE accounts
		 SET available_points = available_points - $2,
		     lifetime_redeemed = lifetime_redeemed + $2,
		     version = version + 1,
		     updated_at = now()
		 WHERE user_id = $1 AND available_points >= $2
		 RETURNING available_points`,
		userID, reward.PointsCost,
	).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, domain.ErrInsufficientFunds
		}
		return nil, 0, fmt.Errorf("repository: failed to deduct points for user %d: %w", userID, err)
	}

	// Общий лимит выдач проверяется тем же UPDATE, что и инкремент счетчика,
	// поэтому гонка между разными пользователями невозможна
	ct, err := tx.Exec(ctx,
		`UPDATE rewards
		 SET total_redeemed = total_redeemed + 1
		 WHERE id = $1 AND (total_limit IS NULL OR total_redeemed < total_limit)`,
		reward.ID,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to increment redemption counter for reward %d: %w", reward.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return nil, 0, domain.ErrLimitExceeded
	}

	userReward := &domain.UserReward{
		UserID:     userID,
		RewardID:   reward.ID,
		PointsUsed: reward.PointsCost,
		CouponCode: couponCode,
		ExpiresAt:  expiresAt,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO user_rewards (user_id, reward_id, points_used, coupon_code, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status, redeemed_at`,
		userID, reward.ID, reward.PointsCost, couponCode, expiresAt,
	).Scan(&userReward.ID, &userReward.Status, &userReward.RedeemedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, 0, domain.ErrCouponCollision
		}
		return nil, 0, fmt.Errorf("repository: failed to create user reward for user %d: %w", userID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (user_id, type, points, source, description, reward_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, domain.TransactionTypeRedeemed, reward.PointsCost,
		domain.SourceRewardRedemption, "Redeemed: "+reward.Name, reward.ID,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to append redemption ledger entry for user %d: %w", userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to commit redemption for user %d: %w", userID, err)
	}

	return userReward, remaining, nil
}

// ExpireDueRewards переводит купоны с истекшим сроком в статус expired
func (r *RewardRepository) ExpireDueRewards(ctx context.Context, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx,
		`UPDATE user_rewards
		 SET status = $1
		 WHERE status = $2 AND expires_at <= $3`,
		domain.UserRewardStatusExpired, domain.UserRewardStatusActive, now,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to expire due rewards: %w", err)
	}

	return ct.RowsAffected(), nil
}
