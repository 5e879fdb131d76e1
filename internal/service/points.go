package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
)

// AccountRepository определяет методы для работы со счетами баллов.
type AccountRepository interface {
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	ApplyAccrual(ctx context.Context, entry *domain.Transaction, tier domain.Tier, expectedVersion int64) (*domain.Account, error)
}

// LedgerRepository определяет методы для чтения журнала баллов.
type LedgerRepository interface {
	GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error)
}

// PointsServiceConfig содержит настройки начислений
type PointsServiceConfig struct {
	Tiers         TierThresholds
	PurchaseRate  float64 // Доля суммы заказа, начисляемая баллами
	ReviewBonus   int64
	ReferralBonus int64
	SignupBonus   int64
	MaxRetries    int // Попытки при конфликте версий счета
}

// PointsService реализует процессор начислений
type PointsService struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
	cfg         PointsServiceConfig
}

// NewPointsService создает новый PointsService
func NewPointsService(accountRepo AccountRepository, ledgerRepo LedgerRepository, cfg PointsServiceConfig) *PointsService {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &PointsService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		cfg:         cfg,
	}
}

// GrantPoints начисляет баллы на счет пользователя.
// Счет создается лениво при первом начислении. Обновление счета и запись в
// журнал применяются атомарно; при конфликте версий операция повторяется
// ограниченное число раз.
func (s *PointsService) GrantPoints(ctx context.Context, userID, points int64, source domain.PointsSource, description, orderID string) (*domain.Account, error) {
	if points <= 0 {
		return nil, domain.NewValidationError("points", "must be a positive integer")
	}
	if !source.Valid() {
		return nil, domain.NewValidationError("source", fmt.Sprintf("unknown value %q", source))
	}

	txType := domain.TransactionTypeEarned
	if source == domain.SourceBonus {
		txType = domain.TransactionTypeBonus
	}

	entry := &domain.Transaction{
		UserID:      userID,
		Type:        txType,
		Points:      points,
		Source:      source,
		Description: description,
	}
	if orderID != "" {
		entry.OrderID = &orderID
	}

	var lastErr error
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		var expectedVersion int64
		var newTotal = points

		account, err := s.accountRepo.GetAccount(ctx, userID)
		switch {
		case err == nil:
			expectedVersion = account.Version
			newTotal = account.TotalPoints + points
		case errors.Is(err, domain.ErrAccountNotFound):
			// Ленивое создание с нулевыми балансами
			expectedVersion = 0
		default:
			return nil, fmt.Errorf("points service: failed to load account for user %d: %w", userID, err)
		}

		tier := TierFor(newTotal, s.cfg.Tiers)

		updated, err := s.accountRepo.ApplyAccrual(ctx, entry, tier, expectedVersion)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			lastErr = err
			continue
		}
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrDuplicateAccrual) {
			return nil, err
		}
		return nil, fmt.Errorf("points service: failed to grant %d points to user %d: %w", points, userID, err)
	}

	return nil, lastErr
}

// GrantForOrder начисляет баллы за завершенный заказ: floor(сумма * ставка).
// Нулевое начисление не создает записей в журнале.
func (s *PointsService) GrantForOrder(ctx context.Context, userID int64, orderID string, orderTotal float64) (*domain.Account, error) {
	if orderTotal < 0 {
		return nil, domain.NewValidationError("orderTotal", "must not be negative")
	}

	points := int64(math.Floor(orderTotal * s.cfg.PurchaseRate))
	if points == 0 {
		return nil, nil
	}

	description := fmt.Sprintf("Points earned for order %s", orderID)
	return s.GrantPoints(ctx, userID, points, domain.SourcePurchase, description, orderID)
}

// GrantForReview начисляет фиксированный бонус за отзыв о заказе
func (s *PointsService) GrantForReview(ctx context.Context, userID int64, orderID string) (*domain.Account, error) {
	description := fmt.Sprintf("Review bonus for order %s", orderID)
	return s.GrantPoints(ctx, userID, s.cfg.ReviewBonus, domain.SourceReview, description, orderID)
}

// GrantForReferral начисляет бонус за приведенного пользователя
func (s *PointsService) GrantForReferral(ctx context.Context, userID int64) (*domain.Account, error) {
	return s.GrantPoints(ctx, userID, s.cfg.ReferralBonus, domain.SourceReferral, "Referral bonus", "")
}

// GrantForSignup начисляет приветственный бонус за регистрацию
func (s *PointsService) GrantForSignup(ctx context.Context, userID int64) (*domain.Account, error) {
	return s.GrantPoints(ctx, userID, s.cfg.SignupBonus, domain.SourceSignupBonus, "Welcome bonus", "")
}

// GetAccount получает счет пользователя. Для пользователя без начислений
// возвращается нулевой счет уровня Bronze, чтение не создает записей.
func (s *PointsService) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return &domain.Account{
				UserID:    userID,
				Tier:      TierFor(0, s.cfg.Tiers),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("points service: failed to get account for user %d: %w", userID, err)
	}

	return account, nil
}

// GetHistory получает историю операций пользователя
func (s *PointsService) GetHistory(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	transactions, err := s.ledgerRepo.GetTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("points service: failed to get history for user %d: %w", userID, err)
	}

	return transactions, nil
}
