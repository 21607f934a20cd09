package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
)

// AchievementHandler serves the achievement catalog with per-user progress
type AchievementHandler struct {
	achievements *usecases.AchievementUsecase
	authUsecase  *usecases.AuthUsecase
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievements *usecases.AchievementUsecase, authUsecase *usecases.AuthUsecase) *AchievementHandler {
	return &AchievementHandler{
		achievements: achievements,
		authUsecase:  authUsecase,
	}
}

// List returns the catalog annotated with the caller's unlock state
// GET /api/v1/achievements
func (h *AchievementHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.authUsecase)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"achievements": h.achievements.ListForUser(user),
	})
}
