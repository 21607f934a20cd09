package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"referral-hub.backend/internal/infrastructure/repositories"
)

func TestSeedUsecase_ReferralCodeCollisionRetries(t *testing.T) {
	userRepo := repositories.NewUserRepository()
	linkRepo := repositories.NewReferralLinkRepository()
	clickRepo := repositories.NewClickRepository()
	achievements := NewAchievementUsecase(repositories.NewAchievementCatalog())
	uc := NewSeedUsecase(userRepo, linkRepo, clickRepo, achievements, "http://localhost:3000")

	// Collide the second user's first roll with the first user's code.
	rolls := []string{"AAAAA1", "AAAAA1", "AAAAA2", "AAAAA3"}
	calls := 0
	uc.generateCode = func() string {
		code := rolls[calls]
		calls++
		return code
	}

	ctx := context.Background()
	_, err := uc.SeedDemoData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	seen := make(map[string]bool, len(users))
	for _, u := range users {
		assert.False(t, seen[u.ReferralCode], "code %q assigned twice", u.ReferralCode)
		seen[u.ReferralCode] = true
	}
	assert.Equal(t, "AAAAA1", users[0].ReferralCode)
	assert.Equal(t, "AAAAA2", users[1].ReferralCode)
	assert.Equal(t, "AAAAA3", users[2].ReferralCode)
}
