package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a participant in the referral program. Earnings and
// referral counters only ever grow; unlocked achievements are permanent.
type User struct {
	ID                   uuid.UUID   `json:"id"`
	FirstName            string      `json:"firstName"`
	LastName             string      `json:"lastName"`
	Email                string      `json:"email"`
	PasswordHash         string      `json:"-"`
	ReferralCode         string      `json:"referralCode"`
	ReferredBy           null.String `json:"referredBy,omitempty"`
	TotalReferrals       int         `json:"totalReferrals"`
	TotalEarnings        float64     `json:"totalEarnings"`
	UnlockedAchievements []string    `json:"unlockedAchievements"`
	CreatedAt            time.Time   `json:"createdAt"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasAchievement reports whether the achievement id is already unlocked.
func (u *User) HasAchievement(id string) bool {
	for _, a := range u.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	cp := *u
	cp.UnlockedAchievements = append([]string(nil), u.UnlockedAchievements...)
	return &cp
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	FirstName    string `json:"firstName" binding:"required,min=1,max=100"`
	LastName     string `json:"lastName" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	ReferralCode string `json:"referralCode"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store the token in Redis and return a SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken string `json:"accessToken,omitempty"`
	SessionID   string `json:"sessionId,omitempty"`
	User        *User  `json:"user"`
}

// ReferralBonus describes the flat credits applied when a registration
// carried a valid referral code.
type ReferralBonus struct {
	NewUserBonus  float64 `json:"newUserBonus"`
	ReferrerBonus float64 `json:"referrerBonus"`
	ReferrerEmail string  `json:"referrerEmail"`
}
