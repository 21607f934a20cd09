package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
)

// ReferralLinkRepository is the in-memory store for tracking links.
type ReferralLinkRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entities.ReferralLink
	order   []uuid.UUID
	codeIdx map[string]uuid.UUID
}

// NewReferralLinkRepository creates an empty in-memory link repository
func NewReferralLinkRepository() *ReferralLinkRepository {
	return &ReferralLinkRepository{
		byID:    make(map[uuid.UUID]*entities.ReferralLink),
		codeIdx: make(map[string]uuid.UUID),
	}
}

// Create inserts a new referral link
func (r *ReferralLinkRepository) Create(ctx context.Context, link *entities.ReferralLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := link.Clone()
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	r.codeIdx[stored.LinkCode] = stored.ID
	return nil
}

// GetByLinkCode gets a link by its public code
func (r *ReferralLinkRepository) GetByLinkCode(ctx context.Context, code string) (*entities.ReferralLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codeIdx[code]
	if !ok {
		return nil, domainerrors.ErrReferralLinkNotFound
	}
	return r.byID[id].Clone(), nil
}

// ListByUser returns all links owned by a user, in creation order
func (r *ReferralLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ReferralLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var links []*entities.ReferralLink
	for _, id := range r.order {
		if link := r.byID[id]; link.UserID == userID {
			links = append(links, link.Clone())
		}
	}
	return links, nil
}

// List returns all links in creation order
func (r *ReferralLinkRepository) List(ctx context.Context) ([]*entities.ReferralLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := make([]*entities.ReferralLink, 0, len(r.order))
	for _, id := range r.order {
		links = append(links, r.byID[id].Clone())
	}
	return links, nil
}

// IncrementClicks bumps the click counter for a link code
func (r *ReferralLinkRepository) IncrementClicks(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.codeIdx[code]
	if !ok {
		return domainerrors.ErrReferralLinkNotFound
	}
	r.byID[id].ClickCount++
	return nil
}

// Reset drops all links
func (r *ReferralLinkRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[uuid.UUID]*entities.ReferralLink)
	r.order = nil
	r.codeIdx = make(map[string]uuid.UUID)
	return nil
}
