package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
	"referral-hub.backend/pkg/logger"
	"go.uber.org/zap"
)

// DemoHandler reseeds the store with demo data
type DemoHandler struct {
	seedUsecase *usecases.SeedUsecase
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(seedUsecase *usecases.SeedUsecase) *DemoHandler {
	return &DemoHandler{seedUsecase: seedUsecase}
}

// Seed wipes all state and loads the demo accounts
// POST /api/v1/demo/seed
func (h *DemoHandler) Seed(c *gin.Context) {
	result, err := h.seedUsecase.SeedDemoData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("demo data seeded",
		zap.Int("users", result.UsersCreated),
		zap.Int("links", result.LinksCreated))

	response.Success(c, http.StatusOK, gin.H{
		"message": "Demo data created successfully",
		"seed":    result,
	})
}
