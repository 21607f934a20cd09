package usecases

const (
	// NewUserBonusAmount is credited to a new user who registered with a
	// valid referral code.
	NewUserBonusAmount = 25.0

	// ReferrerBonusAmount is credited to the owner of the referral code.
	ReferrerBonusAmount = 50.0

	// LeaderboardSize is how many rows the public leaderboard returns.
	LeaderboardSize = 10

	// AnalyticsWindowDays is the click-stats aggregation window.
	AnalyticsWindowDays = 7

	// AnalyticsTopLinks caps the top-links section of the analytics report.
	AnalyticsTopLinks = 5
)
