package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"referral-hub.backend/internal/domain/entities"
)

// ReferralLinkRepository defines referral tracking-link operations
type ReferralLinkRepository interface {
	Create(ctx context.Context, link *entities.ReferralLink) error
	GetByLinkCode(ctx context.Context, code string) (*entities.ReferralLink, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ReferralLink, error)
	List(ctx context.Context) ([]*entities.ReferralLink, error)
	IncrementClicks(ctx context.Context, code string) error
	Reset(ctx context.Context) error
}

// ClickRepository defines click event storage
type ClickRepository interface {
	Create(ctx context.Context, click *entities.Click) error
	ListByLinkCodes(ctx context.Context, codes []string, since time.Time) ([]*entities.Click, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	Reset(ctx context.Context) error
}
