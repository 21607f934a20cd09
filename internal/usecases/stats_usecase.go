package usecases

import (
	"context"
	"sort"

	"referral-hub.backend/internal/domain/entities"
	"referral-hub.backend/internal/domain/repositories"
	"referral-hub.backend/pkg/utils"
)

// StatsUsecase serves the leaderboard and program-wide admin totals.
type StatsUsecase struct {
	userRepo repositories.UserRepository
	linkRepo repositories.ReferralLinkRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(userRepo repositories.UserRepository, linkRepo repositories.ReferralLinkRepository) *StatsUsecase {
	return &StatsUsecase{userRepo: userRepo, linkRepo: linkRepo}
}

// Leaderboard ranks users by total referrals, descending. The sort is
// stable over registration order, so ties go to whoever registered first.
func (u *StatsUsecase) Leaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalReferrals > users[j].TotalReferrals
	})

	if limit <= 0 {
		limit = LeaderboardSize
	}
	if len(users) > limit {
		users = users[:limit]
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, &entities.LeaderboardEntry{
			Rank:           i + 1,
			UserID:         user.ID,
			UserName:       user.FullName(),
			TotalReferrals: user.TotalReferrals,
			TotalEarnings:  user.TotalEarnings,
		})
	}
	return entries, nil
}

// AdminStats aggregates totals across the whole program.
func (u *StatsUsecase) AdminStats(ctx context.Context) (*entities.AdminStats, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	links, err := u.linkRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entities.AdminStats{TotalUsers: len(users)}
	for _, user := range users {
		stats.TotalReferrals += user.TotalReferrals
		stats.TotalEarningsPaid += user.TotalEarnings
	}
	for _, link := range links {
		stats.TotalClicks += link.ClickCount
		stats.TotalRegistrations += link.RegistrationCount
	}
	if stats.TotalClicks > 0 {
		stats.ConversionRate = float64(stats.TotalRegistrations) / float64(stats.TotalClicks) * 100
	}
	return stats, nil
}

// ListUsers returns a page of users in registration order.
func (u *StatsUsecase) ListUsers(ctx context.Context, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	params := utils.GetPaginationParams(page, limit)
	meta := utils.CalculateMeta(int64(len(users)), params.Page, params.Limit)

	if params.Limit > 0 {
		offset := params.Offset()
		if offset >= len(users) {
			return []*entities.User{}, meta, nil
		}
		end := offset + params.Limit
		if end > len(users) {
			end = len(users)
		}
		users = users[offset:end]
	}
	return users, meta, nil
}
