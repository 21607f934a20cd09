package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
)

// UserRepository is the in-memory user ledger. All state is process-lifetime
// only; a restart loses every record. Mutations take the write lock, so the
// duplicate-email check inside Create and the earnings/referrals pair inside
// CreditReferral are each atomic.
type UserRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*entities.User
	order    []uuid.UUID // insertion order, drives leaderboard tie-breaks
	emailIdx map[string]uuid.UUID
	codeIdx  map[string]uuid.UUID
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:     make(map[uuid.UUID]*entities.User),
		emailIdx: make(map[string]uuid.UUID),
		codeIdx:  make(map[string]uuid.UUID),
	}
}

// Create inserts a new user. Returns ErrEmailTaken when the email is already
// registered; the check and the insert happen under one lock acquisition.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emailIdx[user.Email]; exists {
		return domainerrors.ErrEmailTaken
	}

	stored := user.Clone()
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	r.emailIdx[stored.Email] = stored.ID
	r.codeIdx[stored.ReferralCode] = stored.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return user.Clone(), nil
}

// GetByEmail gets a user by email. Callers are expected to normalize the
// email the same way RegisterUser does (lower case).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emailIdx[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

// GetByReferralCode gets a user by their referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codeIdx[code]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

// ReferralCodeExists reports whether a referral code is already assigned
func (r *UserRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.codeIdx[code]
	return ok, nil
}

// Update replaces a stored user record
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[user.ID]
	if !ok {
		return domainerrors.ErrNotFound
	}

	if existing.Email != user.Email {
		delete(r.emailIdx, existing.Email)
		r.emailIdx[user.Email] = user.ID
	}
	if existing.ReferralCode != user.ReferralCode {
		delete(r.codeIdx, existing.ReferralCode)
		r.codeIdx[user.ReferralCode] = user.ID
	}

	r.byID[user.ID] = user.Clone()
	return nil
}

// CreditReferral adds the bonus amount to earnings and the delta to the
// referral counter as one atomic pair (both or neither).
func (r *UserRepository) CreditReferral(ctx context.Context, id uuid.UUID, amount float64, referralDelta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}

	user.TotalEarnings += amount
	user.TotalReferrals += referralDelta
	return nil
}

// List returns all users in registration order
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entities.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id].Clone())
	}
	return users, nil
}

// Reset drops all users
func (r *UserRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[uuid.UUID]*entities.User)
	r.order = nil
	r.emailIdx = make(map[string]uuid.UUID)
	r.codeIdx = make(map[string]uuid.UUID)
	return nil
}
