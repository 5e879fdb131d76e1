package app

import (
	"github.com/avc/recycle-rewards/internal/config"
	"github.com/avc/recycle-rewards/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, cfg *config.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, cfg)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, cfg *config.Config) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Пользовательские эндпоинты (токены выдает внешняя система аутентификации)
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))
		r.Get("/api/user/points", deps.handlers.points.GetAccount)
		r.Get("/api/user/points/history", deps.handlers.points.GetHistory)
		r.Get("/api/user/rewards", deps.handlers.rewards.GetCatalog)
		r.Get("/api/user/rewards/redeemed", deps.handlers.rewards.GetRedeemed)
		r.Post("/api/user/rewards/{rewardID}/redeem", deps.handlers.rewards.Redeem)
	})

	// Внутренние эндпоинты (ручные начисления со стороны администрирования)
	r.Group(func(r chi.Router) {
		r.Use(handlers.ServiceTokenMiddleware(cfg.ServiceToken))
		r.Post("/api/internal/points/grant", deps.handlers.points.Grant)
	})
}
