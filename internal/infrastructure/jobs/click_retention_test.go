package jobs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"referral-hub.backend/internal/domain/entities"
	"referral-hub.backend/internal/infrastructure/repositories"
	"referral-hub.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("production")
	os.Exit(m.Run())
}

func TestClickRetentionJob_PruneOnce(t *testing.T) {
	repo := repositories.NewClickRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	old := &entities.Click{ID: uuid.New(), LinkCode: "A-1", ClickedAt: now.Add(-48 * time.Hour)}
	fresh := &entities.Click{ID: uuid.New(), LinkCode: "A-1", ClickedAt: now}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))

	job := NewClickRetentionJob(repo, 24*time.Hour, time.Hour)
	job.pruneOnce(ctx)

	remaining, err := repo.ListByLinkCodes(ctx, []string{"A-1"}, time.Time{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

func TestClickRetentionJob_StopExitsLoop(t *testing.T) {
	repo := repositories.NewClickRepository()
	job := NewClickRetentionJob(repo, time.Hour, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	job.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestClickRetentionJob_ContextCancelExitsLoop(t *testing.T) {
	repo := repositories.NewClickRepository()
	job := NewClickRetentionJob(repo, time.Hour, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}
