package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReferralLink is a shareable tracking link derived from a user's referral code.
type ReferralLink struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	UserName          string    `json:"userName"`
	LinkCode          string    `json:"linkCode"`
	FullURL           string    `json:"fullUrl"`
	ClickCount        int       `json:"clickCount"`
	RegistrationCount int       `json:"registrationCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Clone returns a copy of the link.
func (l *ReferralLink) Clone() *ReferralLink {
	cp := *l
	return &cp
}

// Click records a single visit to a referral link.
type Click struct {
	ID                    uuid.UUID   `json:"id"`
	LinkCode              string      `json:"linkCode"`
	IPAddress             null.String `json:"ipAddress"`
	UserAgent             null.String `json:"userAgent"`
	ClickedAt             time.Time   `json:"clickedAt"`
	CompletedRegistration bool        `json:"completedRegistration"`
}

// CreateReferralLinkInput represents input for creating a referral link
type CreateReferralLinkInput struct {
	UserName string `json:"userName" binding:"required,min=1,max=100"`
}
