package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/recycle-rewards/internal/domain"
	domainmocks "github.com/avc/recycle-rewards/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withUserID(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func withRewardID(req *http.Request, rewardID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("rewardID", rewardID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestPointsHandler_GetAccount(t *testing.T) {
	mockService := domainmocks.NewPointsServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPointsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		account := &domain.Account{
			UserID:          1,
			TotalPoints:     700,
			AvailablePoints: 650,
			LifetimeEarned:  700,
			Tier:            domain.TierGold,
		}
		mockService.EXPECT().GetAccount(mock.Anything, int64(1)).Return(account, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/points", nil)
		w := httptest.NewRecorder()

		handler.GetAccount(w, withUserID(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Account
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(650), result.AvailablePoints)
		assert.Equal(t, domain.TierGold, result.Tier)
	})

	t.Run("Unauthorized - no user ID in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/points", nil)
		w := httptest.NewRecorder()

		handler.GetAccount(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService.EXPECT().GetAccount(mock.Anything, int64(1)).Return(nil, assert.AnError).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/points", nil)
		w := httptest.NewRecorder()

		handler.GetAccount(w, withUserID(req, 1))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPointsHandler_GetHistory(t *testing.T) {
	mockService := domainmocks.NewPointsServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPointsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		history := []*domain.Transaction{
			{ID: 2, UserID: 1, Type: domain.TransactionTypeRedeemed, Points: 100, Source: domain.SourceRewardRedemption, CreatedAt: time.Now()},
			{ID: 1, UserID: 1, Type: domain.TransactionTypeEarned, Points: 150, Source: domain.SourcePurchase, CreatedAt: time.Now().Add(-time.Hour)},
		}
		mockService.EXPECT().GetHistory(mock.Anything, int64(1)).Return(history, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/points/history", nil)
		w := httptest.NewRecorder()

		handler.GetHistory(w, withUserID(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)

		var result []*domain.Transaction
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("No transactions", func(t *testing.T) {
		mockService.EXPECT().GetHistory(mock.Anything, int64(2)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/points/history", nil)
		w := httptest.NewRecorder()

		handler.GetHistory(w, withUserID(req, 2))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/points/history", nil)
		w := httptest.NewRecorder()

		handler.GetHistory(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPointsHandler_Grant(t *testing.T) {
	mockService := domainmocks.NewPointsServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPointsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		account := &domain.Account{UserID: 1, TotalPoints: 120, AvailablePoints: 120, LifetimeEarned: 120, Tier: domain.TierBronze}
		mockService.EXPECT().
			GrantPoints(mock.Anything, int64(1), int64(20), domain.SourceBonus, "Support compensation", "").
			Return(account, nil).Once()

		body := `{"user_id":1,"points":20,"source":"bonus","description":"Support compensation"}`
		req := httptest.NewRequest(http.MethodPost, "/api/internal/points/grant", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Grant(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Account
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(120), result.TotalPoints)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"user_id":}`
		req := httptest.NewRequest(http.MethodPost, "/api/internal/points/grant", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Grant(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockService.EXPECT().
			GrantPoints(mock.Anything, int64(1), int64(-5), domain.SourceBonus, "", "").
			Return(nil, domain.NewValidationError("points", "must be a positive integer")).Once()

		body := `{"user_id":1,"points":-5,"source":"bonus"}`
		req := httptest.NewRequest(http.MethodPost, "/api/internal/points/grant", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Grant(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate accrual", func(t *testing.T) {
		mockService.EXPECT().
			GrantPoints(mock.Anything, int64(1), int64(10), domain.SourcePurchase, "", "order-1").
			Return(nil, domain.ErrDuplicateAccrual).Once()

		body := `{"user_id":1,"points":10,"source":"purchase","order_id":"order-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/internal/points/grant", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Grant(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Concurrency conflict", func(t *testing.T) {
		mockService.EXPECT().
			GrantPoints(mock.Anything, int64(1), int64(10), domain.SourceBonus, "", "").
			Return(nil, domain.ErrConcurrencyConflict).Once()

		body := `{"user_id":1,"points":10,"source":"bonus"}`
		req := httptest.NewRequest(http.MethodPost, "/api/internal/points/grant", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Grant(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRewardsHandler_GetCatalog(t *testing.T) {
	mockService := domainmocks.NewRewardsServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewRewardsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		rewards := []*domain.Reward{
			{ID: 1, Name: "Free shipping", PointsCost: 50, PerUserLimit: 3, ValidityDays: 14, IsActive: true},
			{ID: 7, Name: "10% off coupon", PointsCost: 100, PerUserLimit: 1, ValidityDays: 30, IsActive: true},
		}
		mockService.EXPECT().GetCatalog(mock.Anything).Return(rewards, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/rewards", nil)
		w := httptest.NewRecorder()

		handler.GetCatalog(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []*domain.Reward
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Empty catalog", func(t *testing.T) {
		mockService.EXPECT().GetCatalog(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/rewards", nil)
		w := httptest.NewRecorder()

		handler.GetCatalog(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService.EXPECT().GetCatalog(mock.Anything).Return(nil, assert.AnError).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/rewards", nil)
		w := httptest.NewRecorder()

		handler.GetCatalog(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRewardsHandler_GetRedeemed(t *testing.T) {
	mockService := domainmocks.NewRewardsServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewRewardsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		userRewards := []*domain.UserReward{
			{ID: 1, UserID: 1, RewardID: 7, PointsUsed: 100, CouponCode: "RW-B2C3D4E5F6G7H2J3", Status: domain.UserRewardStatusActive},
		}
		mockService.EXPECT().GetRedeemed(mock.Anything, int64(1)).Return(userRewards, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/rewards/redeemed", nil)
		w := httptest.NewRecorder()

		handler.GetRedeemed(w, withUserID(req, 1))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No redemptions", func(t *testing.T) {
		mockService.EXPECT().GetRedeemed(mock.Anything, int64(2)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/rewards/redeemed", nil)
		w := httptest.NewRecorder()

		handler.GetRedeemed(w, withUserID(req, 2))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/rewards/redeemed", nil)
		w := httptest.NewRecorder()

		handler.GetRedeemed(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRewardsHandler_Redeem(t *testing.T) {
	mockService := domainmocks.NewRewardsServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewRewardsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		redemption := &domain.Redemption{
			UserReward: &domain.UserReward{
				ID: 11, UserID: 1, RewardID: 7, PointsUsed: 100,
				CouponCode: "RW-B2C3D4E5F6G7H2J3", Status: domain.UserRewardStatusActive,
			},
			RemainingPoints: 50,
		}
		mockService.EXPECT().Redeem(mock.Anything, int64(1), int64(7)).Return(redemption, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/rewards/7/redeem", nil)
		w := httptest.NewRecorder()

		handler.Redeem(w, withRewardID(withUserID(req, 1), "7"))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Redemption
		err := json.NewDecoder(w.Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, int64(50), result.RemainingPoints)
		require.NotNil(t, result.UserReward)
		assert.Equal(t, "RW-B2C3D4E5F6G7H2J3", result.UserReward.CouponCode)
	})

	t.Run("Invalid reward ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/rewards/abc/redeem", nil)
		w := httptest.NewRecorder()

		handler.Redeem(w, withRewardID(withUserID(req, 1), "abc"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Reward not found", func(t *testing.T) {
		mockService.EXPECT().Redeem(mock.Anything, int64(1), int64(999)).Return(nil, domain.ErrRewardNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/rewards/999/redeem", nil)
		w := httptest.NewRecorder()

		handler.Redeem(w, withRewardID(withUserID(req, 1), "999"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Insufficient points", func(t *testing.T) {
		mockService.EXPECT().Redeem(mock.Anything, int64(1), int64(7)).Return(nil, domain.ErrInsufficientFunds).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/rewards/7/redeem", nil)
		w := httptest.NewRecorder()

		handler.Redeem(w, withRewardID(withUserID(req, 1), "7"))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Limit exceeded", func(t *testing.T) {
		mockService.EXPECT().Redeem(mock.Anything, int64(1), int64(7)).Return(nil, domain.ErrLimitExceeded).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/rewards/7/redeem", nil)
		w := httptest.NewRecorder()

		handler.Redeem(w, withRewardID(withUserID(req, 1), "7"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/rewards/7/redeem", nil)
		w := httptest.NewRecorder()

		handler.Redeem(w, withRewardID(req, "7"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
