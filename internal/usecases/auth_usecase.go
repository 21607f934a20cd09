package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/domain/repositories"
	"referral-hub.backend/pkg/crypto"
	"referral-hub.backend/pkg/jwt"
	"referral-hub.backend/pkg/utils"
)

// referralCodeMaxAttempts bounds the retry-until-unique loop. With a 36^6
// code space exhausting this means the ledger is pathologically full.
const referralCodeMaxAttempts = 100

// AuthUsecase is the account ledger: it owns registration, login and the
// referral-bonus crediting rules.
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	achievements *AchievementUsecase
	jwtService   *jwt.JWTService

	// registerMu serializes the register path so the email-uniqueness check
	// and the insert form one critical section under a concurrent server.
	registerMu sync.Mutex

	generateCode func() string
	now          func() time.Time
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	achievements *AchievementUsecase,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		achievements: achievements,
		jwtService:   jwtService,
		generateCode: utils.GenerateReferralCode,
		now:          time.Now,
	}
}

// Register creates a new user account. When the input carries a referral
// code belonging to an existing user, the new user is credited a flat
// welcome bonus, the referrer is credited their bonus plus one referral as
// an atomic pair, and the referrer's achievements are evaluated right after
// that counter mutation. An unknown referral code is silently ignored.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, *entities.ReferralBonus, error) {
	u.registerMu.Lock()
	defer u.registerMu.Unlock()

	email := NormalizeEmail(input.Email)

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil, err
	}

	code, err := u.uniqueReferralCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: passwordHash,
		ReferralCode: code,
		CreatedAt:    u.now().UTC(),
	}

	var bonus *entities.ReferralBonus
	if supplied := strings.TrimSpace(input.ReferralCode); supplied != "" {
		referrer, err := u.userRepo.GetByReferralCode(ctx, supplied)
		switch {
		case err == nil:
			user.TotalEarnings = NewUserBonusAmount
			user.ReferredBy = null.StringFrom(referrer.ID.String())

			if err := u.creditReferral(ctx, referrer.ID, ReferrerBonusAmount, 1); err != nil {
				return nil, nil, err
			}

			bonus = &entities.ReferralBonus{
				NewUserBonus:  NewUserBonusAmount,
				ReferrerBonus: ReferrerBonusAmount,
				ReferrerEmail: referrer.Email,
			}
		case errors.Is(err, domainerrors.ErrNotFound):
			// Unknown code: registration proceeds without any bonus.
		default:
			return nil, nil, err
		}
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	// The default catalog has no zero-target achievements, but the contract
	// supports them, so new users are evaluated too.
	if unlocked := u.achievements.EvaluateUnlocks(user); len(unlocked) > 0 {
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	return &entities.AuthResponse{AccessToken: token, User: user}, bonus, nil
}

// Login authenticates a user and returns a bearer token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{AccessToken: token, User: user}, nil
}

// GetUserByID resolves a user id from a validated token to the live record
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// creditReferral applies the referrer's earnings bonus and referral count as
// one atomic pair, then runs achievement evaluation on the updated counters.
// Internal only: nothing outside the register path may credit referrals.
func (u *AuthUsecase) creditReferral(ctx context.Context, referrerID uuid.UUID, amount float64, referralDelta int) error {
	if err := u.userRepo.CreditReferral(ctx, referrerID, amount, referralDelta); err != nil {
		return err
	}

	referrer, err := u.userRepo.GetByID(ctx, referrerID)
	if err != nil {
		return err
	}

	if unlocked := u.achievements.EvaluateUnlocks(referrer); len(unlocked) > 0 {
		return u.userRepo.Update(ctx, referrer)
	}
	return nil
}

// uniqueReferralCode rolls codes until one is unassigned. The uniqueness
// check against the ledger is mandatory, not probabilistic.
func (u *AuthUsecase) uniqueReferralCode(ctx context.Context) (string, error) {
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

// NormalizeEmail lower-cases and trims an email address. Email uniqueness is
// case-insensitive; every lookup and insert goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
