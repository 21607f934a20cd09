package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"referral-hub.backend/internal/domain/entities"
	"referral-hub.backend/internal/infrastructure/repositories"
)

func newClick(code string, at time.Time) *entities.Click {
	return &entities.Click{
		ID:        uuid.New(),
		LinkCode:  code,
		IPAddress: null.StringFrom("203.0.113.7"),
		UserAgent: null.StringFrom("test-agent"),
		ClickedAt: at,
	}
}

func TestClickRepository_ListByLinkCodes(t *testing.T) {
	repo := repositories.NewClickRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newClick("A-1", now.Add(-48*time.Hour))))
	require.NoError(t, repo.Create(ctx, newClick("A-1", now.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, newClick("B-1", now.Add(-time.Minute))))

	// Filter by code and by window.
	clicks, err := repo.ListByLinkCodes(ctx, []string{"A-1"}, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, clicks, 1)
	assert.Equal(t, "A-1", clicks[0].LinkCode)

	clicks, err = repo.ListByLinkCodes(ctx, []string{"A-1", "B-1"}, now.Add(-72*time.Hour))
	require.NoError(t, err)
	assert.Len(t, clicks, 3)

	clicks, err = repo.ListByLinkCodes(ctx, nil, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, clicks)
}

func TestClickRepository_DeleteOlderThan(t *testing.T) {
	repo := repositories.NewClickRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newClick("A-1", now.Add(-48*time.Hour))))
	require.NoError(t, repo.Create(ctx, newClick("A-1", now.Add(-36*time.Hour))))
	require.NoError(t, repo.Create(ctx, newClick("A-1", now)))

	pruned, err := repo.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	remaining, err := repo.ListByLinkCodes(ctx, []string{"A-1"}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestClickRepository_Reset(t *testing.T) {
	repo := repositories.NewClickRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newClick("A-1", time.Now())))
	require.NoError(t, repo.Reset(ctx))

	clicks, err := repo.ListByLinkCodes(ctx, []string{"A-1"}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, clicks)
}
