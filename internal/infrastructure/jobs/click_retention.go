package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"referral-hub.backend/internal/domain/repositories"
	"referral-hub.backend/pkg/logger"
)

// ClickRetentionJob periodically prunes click events older than the
// retention window. The click log is process-memory only, so without
// pruning a long-lived instance grows without bound.
type ClickRetentionJob struct {
	repo      repositories.ClickRepository
	retention time.Duration
	interval  time.Duration
	stop      chan struct{}
}

// NewClickRetentionJob creates a retention job
func NewClickRetentionJob(repo repositories.ClickRepository, retention, interval time.Duration) *ClickRetentionJob {
	return &ClickRetentionJob{
		repo:      repo,
		retention: retention,
		interval:  interval,
		stop:      make(chan struct{}),
	}
}

// Start runs the pruning loop until the context is cancelled or Stop is called
func (j *ClickRetentionJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting click retention job",
		zap.Duration("retention", j.retention),
		zap.Duration("interval", j.interval),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Click retention job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Click retention job stopped")
			return
		case <-ticker.C:
			j.pruneOnce(ctx)
		}
	}
}

// Stop signals the loop to exit
func (j *ClickRetentionJob) Stop() {
	close(j.stop)
}

func (j *ClickRetentionJob) pruneOnce(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.retention)
	pruned, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error(ctx, "Error pruning old clicks", zap.Error(err))
		return
	}
	if pruned > 0 {
		logger.Info(ctx, "Pruned old clicks", zap.Int("count", pruned))
	}
}
