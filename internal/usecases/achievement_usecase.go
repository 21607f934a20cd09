package usecases

import (
	"sort"

	"referral-hub.backend/internal/domain/entities"
	"referral-hub.backend/internal/domain/repositories"
)

// AchievementUsecase evaluates achievement unlocks as a pure function of a
// user's counters plus the already-unlocked set. It owns no state beyond the
// immutable catalog; persisting mutated users is the caller's job.
type AchievementUsecase struct {
	catalog repositories.AchievementCatalog
}

// NewAchievementUsecase creates a new achievement usecase
func NewAchievementUsecase(catalog repositories.AchievementCatalog) *AchievementUsecase {
	return &AchievementUsecase{catalog: catalog}
}

// EvaluateUnlocks walks the catalog in declaration order and unlocks every
// achievement whose threshold the user's counters now satisfy. Thresholds are
// checked against a snapshot of the counters taken at entry: rewards granted
// during this pass raise TotalEarnings immediately (the caller sees them on
// return) but never feed this pass's own threshold checks, so one unlock
// cannot cascade into another within a single call. Unlocks are permanent.
func (u *AchievementUsecase) EvaluateUnlocks(user *entities.User) []*entities.Achievement {
	referralsSnapshot := user.TotalReferrals
	earningsSnapshot := user.TotalEarnings

	var unlocked []*entities.Achievement
	for _, a := range u.catalog.All() {
		if user.HasAchievement(a.ID) {
			continue
		}

		var met bool
		switch a.Category {
		case entities.AchievementCategoryReferrals:
			met = referralsSnapshot >= a.TargetValue
		case entities.AchievementCategoryEarnings:
			met = earningsSnapshot >= float64(a.TargetValue)
		}
		if !met {
			continue
		}

		user.UnlockedAchievements = append(user.UnlockedAchievements, a.ID)
		user.TotalEarnings += a.RewardAmount
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// Progress returns how far the user is toward an achievement, clamped to
// [0, 1]. Categories that track neither counter report zero progress.
func (u *AchievementUsecase) Progress(user *entities.User, a *entities.Achievement) float64 {
	var current float64
	switch a.Category {
	case entities.AchievementCategoryReferrals:
		current = float64(user.TotalReferrals)
	case entities.AchievementCategoryEarnings:
		current = user.TotalEarnings
	default:
		return 0.0
	}

	if a.TargetValue <= 0 {
		return 1.0
	}

	progress := current / float64(a.TargetValue)
	if progress > 1.0 {
		progress = 1.0
	}
	return progress
}

// ListForUser returns the whole catalog annotated with the user's unlock
// state and progress, unlocked achievements first, then by category.
func (u *AchievementUsecase) ListForUser(user *entities.User) []*entities.AchievementStatus {
	all := u.catalog.All()
	statuses := make([]*entities.AchievementStatus, 0, len(all))
	for _, a := range all {
		statuses = append(statuses, &entities.AchievementStatus{
			Achievement: *a,
			IsUnlocked:  user.HasAchievement(a.ID),
			Progress:    u.Progress(user, a),
		})
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].IsUnlocked != statuses[j].IsUnlocked {
			return statuses[i].IsUnlocked
		}
		return statuses[i].Category < statuses[j].Category
	})
	return statuses
}
