package repositories

import (
	"context"

	"github.com/google/uuid"
	"referral-hub.backend/internal/domain/entities"
)

// UserRepository defines user ledger operations. Implementations must make
// Create atomic with the duplicate-email check, and CreditReferral must apply
// the earnings amount and referral delta as one unit.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByReferralCode(ctx context.Context, code string) (*entities.User, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	CreditReferral(ctx context.Context, id uuid.UUID, amount float64, referralDelta int) error
	List(ctx context.Context) ([]*entities.User, error)
	Reset(ctx context.Context) error
}
