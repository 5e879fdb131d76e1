package domain

import (
	"errors"
	"fmt"
)

// Ошибки счетов и начислений
var (
	ErrAccountNotFound     = errors.New("points account not found")
	ErrConcurrencyConflict = errors.New("account was modified concurrently")
	ErrDuplicateAccrual    = errors.New("points already granted for this order and source")
)

// Ошибки вознаграждений и обменов
var (
	ErrRewardNotFound    = errors.New("reward not found or inactive")
	ErrInsufficientFunds = errors.New("insufficient points")
	ErrLimitExceeded     = errors.New("redemption limit exceeded")
	ErrCouponCollision   = errors.New("coupon code already exists")
)

// ValidationError представляет ошибку валидации входных данных
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError создает новую ошибку валидации
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
