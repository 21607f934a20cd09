package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/interfaces/http/middleware"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
)

// currentUser resolves the authenticated user from the token claims to the
// live ledger record. A token whose user no longer exists yields 401; the
// whole store is process-lifetime, so this happens after a restart.
func currentUser(c *gin.Context, auth *usecases.AuthUsecase) (*entities.User, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return nil, false
	}

	user, err := auth.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, "User not found", domainerrors.ErrUserNotFound))
			return nil, false
		}
		response.Error(c, err)
		return nil, false
	}
	return user, true
}
