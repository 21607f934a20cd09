package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
	"referral-hub.backend/pkg/logger"
)

// ChatHandler forwards assistant messages to the completion service
type ChatHandler struct {
	chatUsecase *usecases.ChatUsecase
	authUsecase *usecases.AuthUsecase
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase *usecases.ChatUsecase, authUsecase *usecases.AuthUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase, authUsecase: authUsecase}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat relays a user message to the assistant
// POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	user, ok := currentUser(c, h.authUsecase)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest("Message is required"))
		return
	}

	userStats := gin.H{
		"totalReferrals": user.TotalReferrals,
		"totalEarnings":  user.TotalEarnings,
		"referralCode":   user.ReferralCode,
	}

	reply, err := h.chatUsecase.Chat(c.Request.Context(), user, req.Message)
	if err != nil {
		// The assistant being down must not break the page: answer with a
		// canned message instead of an error status.
		logger.WithContext(c.Request.Context()).Warn("chat completion unavailable",
			zap.String("userId", user.ID.String()),
			zap.Error(err))
		response.Success(c, http.StatusOK, gin.H{
			"response":  "The assistant is currently unavailable. Please try again later.",
			"userStats": userStats,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"response":  reply,
		"userStats": userStats,
	})
}
