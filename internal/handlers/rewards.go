package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/recycle-rewards/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RewardsService определяет методы сервиса обмена вознаграждений.
type RewardsService interface {
	GetCatalog(ctx context.Context) ([]*domain.Reward, error)
	GetRedeemed(ctx context.Context, userID int64) ([]*domain.UserReward, error)
	Redeem(ctx context.Context, userID, rewardID int64) (*domain.Redemption, error)
}

type RewardsHandler struct {
	rewardsService RewardsService
	logger         *zap.Logger
}

func NewRewardsHandler(rewardsService RewardsService, logger *zap.Logger) *RewardsHandler {
	return &RewardsHandler{
		rewardsService: rewardsService,
		logger:         logger,
	}
}

// GetCatalog возвращает активные позиции каталога
func (h *RewardsHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewardsService.GetCatalog(r.Context())
	if err != nil {
		h.logger.Error("failed to get catalog", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(rewards) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rewards); err != nil {
		h.logger.Error("failed to encode catalog response", zap.Error(err))
	}
}

// GetRedeemed возвращает купоны пользователя
func (h *RewardsHandler) GetRedeemed(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userRewards, err := h.rewardsService.GetRedeemed(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get redeemed rewards", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(userRewards) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(userRewards); err != nil {
		h.logger.Error("failed to encode redeemed response", zap.Error(err))
	}
}

// Redeem обменивает баллы пользователя на вознаграждение
func (h *RewardsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	rewardID, err := strconv.ParseInt(chi.URLParam(r, "rewardID"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	redemption, err := h.rewardsService.Redeem(r.Context(), userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRewardNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInsufficientFunds):
			http.Error(w, "Payment Required", http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrLimitExceeded):
			http.Error(w, "Conflict", http.StatusConflict)
		case errors.Is(err, domain.ErrConcurrencyConflict):
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		default:
			h.logger.Error("failed to redeem reward",
				zap.Int64("reward_id", rewardID),
				zap.Error(err),
			)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(redemption); err != nil {
		h.logger.Error("failed to encode redemption response", zap.Error(err))
	}
}
