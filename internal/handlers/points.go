package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/recycle-rewards/internal/domain"
	"go.uber.org/zap"
)

// PointsService определяет методы сервиса начислений.
type PointsService interface {
	GrantPoints(ctx context.Context, userID, points int64, source domain.PointsSource, description, orderID string) (*domain.Account, error)
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	GetHistory(ctx context.Context, userID int64) ([]*domain.Transaction, error)
}

type PointsHandler struct {
	pointsService PointsService
	logger        *zap.Logger
}

func NewPointsHandler(pointsService PointsService, logger *zap.Logger) *PointsHandler {
	return &PointsHandler{
		pointsService: pointsService,
		logger:        logger,
	}
}

// GetAccount возвращает сводку по счету баллов пользователя
func (h *PointsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	account, err := h.pointsService.GetAccount(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get account", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(account); err != nil {
		h.logger.Error("failed to encode account response", zap.Error(err))
	}
}

// GetHistory возвращает историю операций пользователя
func (h *PointsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	history, err := h.pointsService.GetHistory(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get history", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(history) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(history); err != nil {
		h.logger.Error("failed to encode history response", zap.Error(err))
	}
}

type grantRequest struct {
	UserID      int64               `json:"user_id"`
	Points      int64               `json:"points"`
	Source      domain.PointsSource `json:"source"`
	Description string              `json:"description"`
	OrderID     string              `json:"order_id,omitempty"`
}

// Grant обрабатывает внутренние запросы ручного начисления баллов
func (h *PointsHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	account, err := h.pointsService.GrantPoints(r.Context(), req.UserID, req.Points, req.Source, req.Description, req.OrderID)
	if err != nil {
		if domain.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrDuplicateAccrual) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("failed to grant points", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(account); err != nil {
		h.logger.Error("failed to encode grant response", zap.Error(err))
	}
}
