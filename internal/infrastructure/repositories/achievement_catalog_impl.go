package repositories

import "referral-hub.backend/internal/domain/entities"

// defaultCatalog holds the achievement catalog in declaration order. The
// order is load-bearing: it fixes the unlock tie-break and reward summation
// order when several achievements unlock in one evaluation pass.
var defaultCatalog = []*entities.Achievement{
	{
		ID:           "first_referral",
		Title:        "First Referral",
		Description:  "Make your first successful referral",
		Icon:         "🎯",
		TargetValue:  1,
		RewardAmount: 10.0,
		Category:     entities.AchievementCategoryReferrals,
	},
	{
		ID:           "five_referrals",
		Title:        "Networker",
		Description:  "Achieve 5 successful referrals",
		Icon:         "🚀",
		TargetValue:  5,
		RewardAmount: 25.0,
		Category:     entities.AchievementCategoryReferrals,
	},
	{
		ID:           "ten_referrals",
		Title:        "Influencer",
		Description:  "Reach 10 successful referrals",
		Icon:         "⭐",
		TargetValue:  10,
		RewardAmount: 50.0,
		Category:     entities.AchievementCategoryReferrals,
	},
	{
		ID:           "twenty_referrals",
		Title:        "Super Star",
		Description:  "Amazing! 20 successful referrals",
		Icon:         "🏆",
		TargetValue:  20,
		RewardAmount: 100.0,
		Category:     entities.AchievementCategoryReferrals,
	},
	{
		ID:           "hundred_earnings",
		Title:        "Earner",
		Description:  "Earn your first $100",
		Icon:         "💰",
		TargetValue:  100,
		RewardAmount: 20.0,
		Category:     entities.AchievementCategoryEarnings,
	},
	{
		ID:           "five_hundred_earnings",
		Title:        "Money Maker",
		Description:  "Earn $500 in total",
		Icon:         "💎",
		TargetValue:  500,
		RewardAmount: 50.0,
		Category:     entities.AchievementCategoryEarnings,
	},
}

// AchievementCatalog serves the fixed default catalog.
type AchievementCatalog struct {
	achievements []*entities.Achievement
}

// NewAchievementCatalog creates the catalog with the default achievement set
func NewAchievementCatalog() *AchievementCatalog {
	return &AchievementCatalog{achievements: defaultCatalog}
}

// All returns the catalog in declaration order. Callers must treat the
// achievements as read-only.
func (c *AchievementCatalog) All() []*entities.Achievement {
	out := make([]*entities.Achievement, len(c.achievements))
	copy(out, c.achievements)
	return out
}
