package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"referral-hub.backend/internal/domain/entities"
	"referral-hub.backend/internal/domain/repositories"
)

// ReferralUsecase manages shareable tracking links and their click stream.
type ReferralUsecase struct {
	linkRepo  repositories.ReferralLinkRepository
	clickRepo repositories.ClickRepository
	baseURL   string

	now func() time.Time
}

// NewReferralUsecase creates a new referral usecase. baseURL is the public
// origin referral links point at.
func NewReferralUsecase(
	linkRepo repositories.ReferralLinkRepository,
	clickRepo repositories.ClickRepository,
	baseURL string,
) *ReferralUsecase {
	return &ReferralUsecase{
		linkRepo:  linkRepo,
		clickRepo: clickRepo,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// CreateLink creates a tracking link for the user. The link code embeds the
// owner's referral code plus a timestamp so every link stays attributable.
func (u *ReferralUsecase) CreateLink(ctx context.Context, user *entities.User, input *entities.CreateReferralLinkInput) (*entities.ReferralLink, error) {
	now := u.now().UTC()
	linkCode := fmt.Sprintf("%s-%s", user.ReferralCode, now.Format("20060102150405"))

	link := &entities.ReferralLink{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserName:  input.UserName,
		LinkCode:  linkCode,
		FullURL:   fmt.Sprintf("%s/register?ref=%s", u.baseURL, linkCode),
		CreatedAt: now,
	}

	if err := u.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// ListLinks returns the user's tracking links
func (u *ReferralUsecase) ListLinks(ctx context.Context, userID uuid.UUID) ([]*entities.ReferralLink, error) {
	return u.linkRepo.ListByUser(ctx, userID)
}

// TrackClick records a visit to a tracking link and bumps its counter.
// Returns ErrReferralLinkNotFound for unknown codes.
func (u *ReferralUsecase) TrackClick(ctx context.Context, linkCode, ipAddress, userAgent string) error {
	if _, err := u.linkRepo.GetByLinkCode(ctx, linkCode); err != nil {
		return err
	}

	click := &entities.Click{
		ID:        uuid.New(),
		LinkCode:  linkCode,
		IPAddress: null.NewString(ipAddress, ipAddress != ""),
		UserAgent: null.NewString(userAgent, userAgent != ""),
		ClickedAt: u.now().UTC(),
	}
	if err := u.clickRepo.Create(ctx, click); err != nil {
		return err
	}

	return u.linkRepo.IncrementClicks(ctx, linkCode)
}

// Analytics aggregates the user's recorded clicks into per-day buckets over
// the trailing week, oldest day first, plus their top links.
func (u *ReferralUsecase) Analytics(ctx context.Context, user *entities.User) (*entities.AnalyticsReport, error) {
	links, err := u.linkRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(links))
	for _, l := range links {
		codes = append(codes, l.LinkCode)
	}

	now := u.now().UTC()
	windowStart := now.AddDate(0, 0, -(AnalyticsWindowDays - 1)).Truncate(24 * time.Hour)

	clicks, err := u.clickRepo.ListByLinkCodes(ctx, codes, windowStart)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*entities.DailyClicks, AnalyticsWindowDays)
	stats := make([]entities.DailyClicks, 0, AnalyticsWindowDays)
	for i := AnalyticsWindowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		stats = append(stats, entities.DailyClicks{Date: date})
		buckets[date] = &stats[len(stats)-1]
	}

	for _, click := range clicks {
		bucket, ok := buckets[click.ClickedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		bucket.Clicks++
		if click.CompletedRegistration {
			bucket.Conversions++
		}
	}

	topLinks := links
	if len(topLinks) > AnalyticsTopLinks {
		topLinks = topLinks[:AnalyticsTopLinks]
	}

	return &entities.AnalyticsReport{
		UserStats: entities.UserStats{
			TotalReferrals: user.TotalReferrals,
			TotalEarnings:  user.TotalEarnings,
			ReferralCode:   user.ReferralCode,
		},
		ClickStats: stats,
		TopLinks:   topLinks,
	}, nil
}
