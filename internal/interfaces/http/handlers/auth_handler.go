package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/interfaces/http/middleware"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
	"referral-hub.backend/pkg/crypto"
	"referral-hub.backend/pkg/logger"
	"referral-hub.backend/pkg/redis"
)

// SessionStore abstracts the Redis-backed session storage used for opt-in
// session login. Nil means sessions are disabled.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthHandler handles registration, login and the current-user endpoint
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore SessionStore
	sessionTTL   time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore SessionStore, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, bonus, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			response.Error(c, domainerrors.BadRequest("Email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	middleware.UsersRegisteredTotal.Inc()

	body := gin.H{
		"accessToken": auth.AccessToken,
		"tokenType":   "bearer",
		"user":        auth.User,
	}
	if bonus != nil {
		middleware.ReferralBonusesTotal.Inc()
		body["referralBonus"] = bonus
		logger.Info(c.Request.Context(), "Referral bonus credited",
			zap.String("referrerEmail", bonus.ReferrerEmail),
			zap.Float64("referrerBonus", bonus.ReferrerBonus),
			zap.Float64("newUserBonus", bonus.NewUserBonus),
		)
	}

	response.Success(c, http.StatusCreated, body)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, "Invalid email or password", domainerrors.ErrInvalidCredentials))
			return
		}
		response.Error(c, err)
		return
	}

	if input.UseSession && h.sessionStore != nil {
		sessionID, err := crypto.GenerateRandomToken(16)
		if err != nil {
			response.Error(c, err)
			return
		}
		data := &redis.SessionData{
			AccessToken: auth.AccessToken,
			UserID:      auth.User.ID.String(),
		}
		if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, data, h.sessionTTL); err != nil {
			response.Error(c, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{
			"sessionId": sessionID,
			"tokenType": "bearer",
			"user":      auth.User,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken": auth.AccessToken,
		"tokenType":   "bearer",
		"user":        auth.User,
	})
}

// Logout revokes the session named in X-Session-ID. Bearer-token clients
// have nothing to revoke server side; they get the same response.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader(middleware.SessionIDHeader)
	if sessionID != "" && h.sessionStore != nil {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), sessionID); err != nil {
			response.Error(c, err)
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe returns the authenticated user's record
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, ok := currentUser(c, h.authUsecase)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
