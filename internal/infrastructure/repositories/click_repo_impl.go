package repositories

import (
	"context"
	"sync"
	"time"

	"referral-hub.backend/internal/domain/entities"
)

// ClickRepository is the in-memory click event log, append-only except for
// retention pruning.
type ClickRepository struct {
	mu     sync.RWMutex
	clicks []*entities.Click
}

// NewClickRepository creates an empty in-memory click repository
func NewClickRepository() *ClickRepository {
	return &ClickRepository{}
}

// Create appends a click record
func (r *ClickRepository) Create(ctx context.Context, click *entities.Click) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *click
	r.clicks = append(r.clicks, &cp)
	return nil
}

// ListByLinkCodes returns clicks for any of the given codes recorded at or
// after since, oldest first.
func (r *ClickRepository) ListByLinkCodes(ctx context.Context, codes []string, since time.Time) ([]*entities.Click, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		wanted[c] = struct{}{}
	}

	var out []*entities.Click
	for _, click := range r.clicks {
		if click.ClickedAt.Before(since) {
			continue
		}
		if _, ok := wanted[click.LinkCode]; !ok {
			continue
		}
		cp := *click
		out = append(out, &cp)
	}
	return out, nil
}

// DeleteOlderThan removes clicks recorded before cutoff and returns how many
// were pruned.
func (r *ClickRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.clicks[:0]
	pruned := 0
	for _, click := range r.clicks {
		if click.ClickedAt.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, click)
	}
	r.clicks = kept
	return pruned, nil
}

// Reset drops all clicks
func (r *ClickRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clicks = nil
	return nil
}
