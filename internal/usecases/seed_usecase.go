package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/domain/repositories"
	"referral-hub.backend/pkg/crypto"
	"referral-hub.backend/pkg/utils"
)

// SeedResult reports what the demo seed created.
type SeedResult struct {
	UsersCreated int               `json:"usersCreated"`
	LinksCreated int               `json:"linksCreated"`
	Credentials  map[string]string `json:"credentials"`
}

type demoUser struct {
	firstName      string
	lastName       string
	email          string
	password       string
	totalReferrals int
	totalEarnings  float64
}

var demoUsers = []demoUser{
	{"Maria", "Silva", "maria@example.com", "demo1234", 8, 425.0},
	{"Joao", "Santos", "joao@example.com", "demo1234", 3, 175.0},
	{"Ana", "Costa", "ana@example.com", "demo1234", 12, 650.0},
}

// SeedUsecase wipes the store and loads demo accounts with preset counters.
// Achievement evaluation runs on the seeded counters, which exercises the
// multi-unlock path (a counter jumping past several thresholds at once).
type SeedUsecase struct {
	userRepo     repositories.UserRepository
	linkRepo     repositories.ReferralLinkRepository
	clickRepo    repositories.ClickRepository
	achievements *AchievementUsecase
	baseURL      string

	generateCode func() string
	now          func() time.Time
}

// NewSeedUsecase creates a new seed usecase
func NewSeedUsecase(
	userRepo repositories.UserRepository,
	linkRepo repositories.ReferralLinkRepository,
	clickRepo repositories.ClickRepository,
	achievements *AchievementUsecase,
	baseURL string,
) *SeedUsecase {
	return &SeedUsecase{
		userRepo:     userRepo,
		linkRepo:     linkRepo,
		clickRepo:    clickRepo,
		achievements: achievements,
		baseURL:      baseURL,
		generateCode: utils.GenerateReferralCode,
		now:          time.Now,
	}
}

// SeedDemoData clears all state and creates the demo accounts.
func (u *SeedUsecase) SeedDemoData(ctx context.Context) (*SeedResult, error) {
	if err := u.userRepo.Reset(ctx); err != nil {
		return nil, err
	}
	if err := u.linkRepo.Reset(ctx); err != nil {
		return nil, err
	}
	if err := u.clickRepo.Reset(ctx); err != nil {
		return nil, err
	}

	result := &SeedResult{Credentials: make(map[string]string, len(demoUsers))}
	now := u.now().UTC()

	for i, demo := range demoUsers {
		passwordHash, err := crypto.HashPassword(demo.password)
		if err != nil {
			return nil, err
		}

		code, err := u.uniqueReferralCode(ctx)
		if err != nil {
			return nil, err
		}

		user := &entities.User{
			ID:             uuid.New(),
			FirstName:      demo.firstName,
			LastName:       demo.lastName,
			Email:          NormalizeEmail(demo.email),
			PasswordHash:   passwordHash,
			ReferralCode:   code,
			TotalReferrals: demo.totalReferrals,
			TotalEarnings:  demo.totalEarnings,
			CreatedAt:      now,
		}
		u.achievements.EvaluateUnlocks(user)

		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		result.UsersCreated++
		result.Credentials[demo.email] = demo.password

		link := &entities.ReferralLink{
			ID:                uuid.New(),
			UserID:            user.ID,
			UserName:          fmt.Sprintf("Friends of %s", demo.firstName),
			LinkCode:          fmt.Sprintf("%s-DEMO", user.ReferralCode),
			FullURL:           fmt.Sprintf("%s/register?ref=%s-DEMO", u.baseURL, user.ReferralCode),
			ClickCount:        (i + 1) * 12,
			RegistrationCount: demo.totalReferrals,
			CreatedAt:         now,
		}
		if err := u.linkRepo.Create(ctx, link); err != nil {
			return nil, err
		}
		result.LinksCreated++
	}

	return result, nil
}

// uniqueReferralCode rolls codes until one is unassigned, same discipline as
// the registration path.
func (u *SeedUsecase) uniqueReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < referralCodeMaxAttempts; attempt++ {
		code := u.generateCode()
		exists, err := u.userRepo.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domainerrors.NewError("could not allocate a unique referral code", domainerrors.ErrInvalidInput)
}
