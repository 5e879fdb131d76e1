package service

import "github.com/avc/recycle-rewards/internal/domain"

// TierThresholds задает минимальный totalPoints для каждого уровня.
// Пороги приходят из конфигурации, а не зашиты в логику.
type TierThresholds struct {
	Silver   int64
	Gold     int64
	Platinum int64
}

// TierFor вычисляет уровень по накопленным за все время баллам.
// Пороги проверяются сверху вниз. Уровень зависит только от totalPoints,
// поэтому списание баллов никогда его не понижает.
func TierFor(totalPoints int64, t TierThresholds) domain.Tier {
	switch {
	case totalPoints >= t.Platinum:
		return domain.TierPlatinum
	case totalPoints >= t.Gold:
		return domain.TierGold
	case totalPoints >= t.Silver:
		return domain.TierSilver
	default:
		return domain.TierBronze
	}
}
