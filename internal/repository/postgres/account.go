package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AccountRepository реализует domain.AccountRepository
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository создает новый AccountRepository
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccount получает счет баллов пользователя
func (r *AccountRepository) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account := &domain.Account{}

	err := r.db.QueryRow(ctx,
		`SELECT user_id, total_points, available_points, lifetime_earned, lifetime_redeemed,
		        tier, version, created_at, updated_at
		 FROM accounts
		 WHERE user_id = $1`,
		userID,
	).Scan(
		&account.UserID, &account.TotalPoints, &account.AvailablePoints,
		&account.LifetimeEarned, &account.LifetimeRedeemed,
		&account.Tier, &account.Version, &account.CreatedAt, &account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to get account for user %d: %w", userID, err)
	}

	return account, nil
}

// ApplyAccrual атомарно применяет начисление: вставка или версионное обновление
// счета плюс запись в журнал в одной транзакции БД.
// При конфликте версий возвращает domain.ErrConcurrencyConflict, повтор
// выполняется на стороне сервиса.
func (r *AccountRepository) ApplyAccrual(ctx context.Context, entry *domain.Transaction, tier domain.Tier, expectedVersion int64) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin accrual transaction for user %d: %w", entry.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	account := &domain.Account{}
	var row pgx.Row

	if expectedVersion == 0 {
		// Ленивое создание счета: при гонке за создание ON CONFLICT DO NOTHING
		// не вернет строку, что трактуется как конфликт версий
		row = tx.QueryRow(ctx,
			`INSERT INTO accounts (user_id, total_points, available_points, lifetime_earned, tier)
			 VALUES ($1, $2, $2, $2, $3)
			 ON CONFLICT (user_id) DO NOTHING
			 RETURNING user_id, total_points, available_points, lifetime_earned, lifetime_redeemed,
			           tier, version, created_at, updated_at`,
			entry.UserID, entry.Points, tier,
		)
	} else {
		row = tx.QueryRow(ctx,
			`UPDATE accounts
			 SET total_points = total_points + $2,
			     available_points = available_points + $2,
			     lifetime_earned = lifetime_earned + $2,
			     tier = $3,
			     version = version + 1,
			     updated_at = now()
			 WHERE user_id = $1 AND version = $4
			 RETURNING user_id, total_points, available_points, lifetime_earned, lifetime_redeemed,
			           tier, version, created_at, updated_at`,
			entry.UserID, entry.Points, tier, expectedVersion,
		)
	}

	err = row.Scan(
		&account.UserID, &account.TotalPoints, &account.AvailablePoints,
		&account.LifetimeEarned, &account.LifetimeRedeemed,
		&account.Tier, &account.Version, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConcurrencyConflict
		}
		return nil, fmt.Errorf("repository: failed to apply accrual for user %d: %w", entry.UserID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (user_id, type, points, source, description, order_id, reward_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.UserID, entry.Type, entry.Points, entry.Source, entry.Description, entry.OrderID, entry.RewardID,
	)
	if err != nil {
		// Повторная доставка события: уникальный индекс по (order_id, source)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrDuplicateAccrual
		}
		return nil, fmt.Errorf("repository: failed to append ledger entry for user %d: %w", entry.UserID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit accrual for user %d: %w", entry.UserID, err)
	}

	return account, nil
}
