package entities

// AchievementCategory determines which user counter an achievement tracks
type AchievementCategory string

const (
	AchievementCategoryReferrals AchievementCategory = "referrals"
	AchievementCategoryEarnings  AchievementCategory = "earnings"
	AchievementCategorySocial    AchievementCategory = "social"
)

// Achievement is a catalog milestone with a threshold and a one-time reward.
// The catalog is fixed at startup and never mutated.
type Achievement struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Icon         string              `json:"icon"`
	TargetValue  int                 `json:"targetValue"`
	RewardAmount float64             `json:"rewardAmount"`
	Category     AchievementCategory `json:"category"`
}

// AchievementStatus is an achievement annotated with a user's progress.
type AchievementStatus struct {
	Achievement
	IsUnlocked bool    `json:"isUnlocked"`
	Progress   float64 `json:"progress"`
}
