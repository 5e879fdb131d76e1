package postgres

import (
	"context"
	"fmt"

	"github.com/avc/recycle-rewards/internal/domain"
)

// LedgerRepository реализует domain.LedgerRepository
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetTransactions получает историю операций пользователя, новые первыми
func (r *LedgerRepository) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, points, source, description, order_id, reward_id, status, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		tx := &domain.Transaction{}
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Points, &tx.Source,
			&tx.Description, &tx.OrderID, &tx.RewardID, &tx.Status, &tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
