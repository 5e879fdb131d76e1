package domain

import "time"

// Tier представляет уровень лояльности пользователя
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// TransactionType представляет тип операции в журнале баллов
type TransactionType string

const (
	TransactionTypeEarned   TransactionType = "earned"
	TransactionTypeRedeemed TransactionType = "redeemed"
	TransactionTypeExpired  TransactionType = "expired"
	TransactionTypeBonus    TransactionType = "bonus"
)

// PointsSource представляет источник начисления или списания баллов
type PointsSource string

const (
	SourcePurchase         PointsSource = "purchase"
	SourceReferral         PointsSource = "referral"
	SourceReview           PointsSource = "review"
	SourceBonus            PointsSource = "bonus"
	SourceRewardRedemption PointsSource = "reward_redemption"
	SourceSignupBonus      PointsSource = "signup_bonus"
)

// Valid проверяет, что источник входит в известный набор
func (s PointsSource) Valid() bool {
	switch s {
	case SourcePurchase, SourceReferral, SourceReview, SourceBonus,
		SourceRewardRedemption, SourceSignupBonus:
		return true
	}
	return false
}

// TransactionStatus представляет статус записи журнала
type TransactionStatus string

const (
	TransactionStatusActive  TransactionStatus = "active"
	TransactionStatusExpired TransactionStatus = "expired"
	TransactionStatusUsed    TransactionStatus = "used"
)

// UserRewardStatus представляет статус выданного купона
type UserRewardStatus string

const (
	UserRewardStatusActive  UserRewardStatus = "active"
	UserRewardStatusUsed    UserRewardStatus = "used"
	UserRewardStatusExpired UserRewardStatus = "expired"
)

// Account представляет счет баллов пользователя
type Account struct {
	UserID           int64     `json:"-"`
	TotalPoints      int64     `json:"total_points"`
	AvailablePoints  int64     `json:"available_points"`
	LifetimeEarned   int64     `json:"lifetime_earned"`
	LifetimeRedeemed int64     `json:"lifetime_redeemed"`
	Tier             Tier      `json:"current_tier"`
	Version          int64     `json:"-"` // Версия для оптимистичной блокировки
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// Transaction представляет запись в журнале баллов.
// Записи неизменяемы: журнал является источником истины для балансов.
type Transaction struct {
	ID          int64             `json:"-"`
	UserID      int64             `json:"-"`
	Type        TransactionType   `json:"type"`
	Points      int64             `json:"points"` // Всегда положительное, знак определяется типом
	Source      PointsSource      `json:"source"`
	Description string            `json:"description"`
	OrderID     *string           `json:"order_id,omitempty"`
	RewardID    *int64            `json:"reward_id,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Reward представляет позицию каталога вознаграждений
type Reward struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PointsCost    int64     `json:"points_cost"`
	PerUserLimit  int       `json:"per_user_limit"`
	TotalLimit    *int64    `json:"total_limit,omitempty"` // nil означает отсутствие общего лимита
	ValidityDays  int       `json:"validity_days"`
	IsActive      bool      `json:"is_active"`
	TotalRedeemed int64     `json:"total_redeemed"`
	CreatedAt     time.Time `json:"-"`
}

// UserReward представляет запись об обмене баллов на вознаграждение
type UserReward struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"-"`
	RewardID   int64            `json:"reward_id"`
	PointsUsed int64            `json:"points_used"`
	CouponCode string           `json:"coupon_code"`
	Status     UserRewardStatus `json:"status"`
	RedeemedAt time.Time        `json:"redeemed_at"`
	ExpiresAt  time.Time        `json:"expires_at"`
}

// Redemption представляет результат успешного обмена
type Redemption struct {
	UserReward      *UserReward `json:"reward"`
	RemainingPoints int64       `json:"remaining_points"`
}

// OrderEventType представляет тип события из системы заказов
type OrderEventType string

const (
	EventOrderCompleted    OrderEventType = "order_completed"
	EventReviewSubmitted   OrderEventType = "review_submitted"
	EventReferralCompleted OrderEventType = "referral_completed"
	EventUserRegistered    OrderEventType = "user_registered"
)

// OrderEvent представляет событие из ленты системы заказов
type OrderEvent struct {
	ID      int64          `json:"id"`
	Type    OrderEventType `json:"type"`
	UserID  int64          `json:"user_id"`
	OrderID string         `json:"order_id,omitempty"`
	Total   float64        `json:"total,omitempty"`
}
