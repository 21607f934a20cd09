package entities

import "github.com/google/uuid"

// LeaderboardEntry is one row of the referral leaderboard.
type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	UserID         uuid.UUID `json:"userId"`
	UserName       string    `json:"userName"`
	TotalReferrals int       `json:"totalReferrals"`
	TotalEarnings  float64   `json:"totalEarnings"`
}

// AdminStats aggregates program-wide totals.
type AdminStats struct {
	TotalUsers         int     `json:"totalUsers"`
	TotalReferrals     int     `json:"totalReferrals"`
	TotalClicks        int     `json:"totalClicks"`
	TotalRegistrations int     `json:"totalRegistrations"`
	ConversionRate     float64 `json:"conversionRate"`
	TotalEarningsPaid  float64 `json:"totalEarningsPaid"`
}

// DailyClicks is a per-day click aggregation bucket.
type DailyClicks struct {
	Date        string `json:"date"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
}

// UserStats is the counter summary reported back with analytics and chat.
type UserStats struct {
	TotalReferrals int     `json:"totalReferrals"`
	TotalEarnings  float64 `json:"totalEarnings"`
	ReferralCode   string  `json:"referralCode,omitempty"`
}

// AnalyticsReport is the per-user referral analytics payload.
type AnalyticsReport struct {
	UserStats  UserStats       `json:"userStats"`
	ClickStats []DailyClicks   `json:"clickStats"`
	TopLinks   []*ReferralLink `json:"topLinks"`
}
