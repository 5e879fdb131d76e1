package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress         string        // Адрес и порт запуска сервиса
	DatabaseURI        string        // URI подключения к БД
	OrderSystemAddress string        // Адрес системы заказов (лента событий)
	ServiceToken       string        // Токен для внутренних эндпоинтов
	JWTSecret          string        // Секретный ключ для проверки JWT
	JWTTokenTTL        time.Duration // Время жизни JWT токена
	LogLevel           string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди событий
	WorkerPollInterval time.Duration // Интервал опроса ленты событий
	SweepInterval      time.Duration // Интервал проверки просроченных купонов
	EventBatchSize     int           // Максимум событий за один опрос

	// Правила начисления
	PurchaseRate  float64 // Доля суммы заказа, начисляемая баллами
	ReviewBonus   int64   // Баллы за отзыв
	ReferralBonus int64   // Баллы за приведенного пользователя
	SignupBonus   int64   // Баллы за регистрацию

	// Пороги уровней (по totalPoints)
	TierSilver   int64
	TierGold     int64
	TierPlatinum int64

	// Число попыток при конфликте версий счета
	AccrualMaxRetries int
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env файл, если присутствует, подгружается до чтения окружения
	_ = godotenv.Load()

	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerPollInterval: 10 * time.Second,
		SweepInterval:      time.Minute,
		EventBatchSize:     100,
		PurchaseRate:       0.10,
		ReviewBonus:        10,
		ReferralBonus:      50,
		SignupBonus:        25,
		TierSilver:         200,
		TierGold:           500,
		TierPlatinum:       1000,
		AccrualMaxRetries:  3,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.OrderSystemAddress, "r", "", "order system address")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envOrderAddr, ok := os.LookupEnv("ORDER_SYSTEM_ADDRESS"); ok {
		cfg.OrderSystemAddress = envOrderAddr
	}

	// Секреты только из env, не из флагов
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envServiceToken, ok := os.LookupEnv("SERVICE_TOKEN"); ok {
		cfg.ServiceToken = envServiceToken
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envPollInterval, ok := os.LookupEnv("WORKER_POLL_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envPollInterval); err == nil && interval > 0 {
			cfg.WorkerPollInterval = interval
		}
	}

	if envSweepInterval, ok := os.LookupEnv("SWEEP_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envSweepInterval); err == nil && interval > 0 {
			cfg.SweepInterval = interval
		}
	}

	if envBatchSize, ok := os.LookupEnv("EVENT_BATCH_SIZE"); ok {
		if size, err := strconv.Atoi(envBatchSize); err == nil && size > 0 {
			cfg.EventBatchSize = size
		}
	}

	// Правила начисления из env
	if envRate, ok := os.LookupEnv("PURCHASE_RATE"); ok {
		if rate, err := strconv.ParseFloat(envRate, 64); err == nil && rate > 0 {
			cfg.PurchaseRate = rate
		}
	}

	if envReviewBonus, ok := os.LookupEnv("REVIEW_BONUS"); ok {
		if bonus, err := strconv.ParseInt(envReviewBonus, 10, 64); err == nil && bonus > 0 {
			cfg.ReviewBonus = bonus
		}
	}

	if envReferralBonus, ok := os.LookupEnv("REFERRAL_BONUS"); ok {
		if bonus, err := strconv.ParseInt(envReferralBonus, 10, 64); err == nil && bonus > 0 {
			cfg.ReferralBonus = bonus
		}
	}

	if envSignupBonus, ok := os.LookupEnv("SIGNUP_BONUS"); ok {
		if bonus, err := strconv.ParseInt(envSignupBonus, 10, 64); err == nil && bonus > 0 {
			cfg.SignupBonus = bonus
		}
	}

	// Пороги уровней из env
	if envSilver, ok := os.LookupEnv("TIER_SILVER"); ok {
		if threshold, err := strconv.ParseInt(envSilver, 10, 64); err == nil && threshold > 0 {
			cfg.TierSilver = threshold
		}
	}

	if envGold, ok := os.LookupEnv("TIER_GOLD"); ok {
		if threshold, err := strconv.ParseInt(envGold, 10, 64); err == nil && threshold > 0 {
			cfg.TierGold = threshold
		}
	}

	if envPlatinum, ok := os.LookupEnv("TIER_PLATINUM"); ok {
		if threshold, err := strconv.ParseInt(envPlatinum, 10, 64); err == nil && threshold > 0 {
			cfg.TierPlatinum = threshold
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.OrderSystemAddress == "" {
		return nil, fmt.Errorf("order system address is required (use -r flag or ORDER_SYSTEM_ADDRESS env)")
	}

	if cfg.TierSilver >= cfg.TierGold || cfg.TierGold >= cfg.TierPlatinum {
		return nil, fmt.Errorf("tier thresholds must be strictly increasing: silver %d, gold %d, platinum %d",
			cfg.TierSilver, cfg.TierGold, cfg.TierPlatinum)
	}

	return cfg, nil
}
