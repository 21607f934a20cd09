package repositories

import "referral-hub.backend/internal/domain/entities"

// AchievementCatalog exposes the fixed achievement catalog. All returns
// achievements in declaration order; that order is the unlock tie-break
// order and must be stable for the process lifetime.
type AchievementCatalog interface {
	All() []*entities.Achievement
}
