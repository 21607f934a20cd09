package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
)

// StatsHandler serves the leaderboard and admin aggregates
type StatsHandler struct {
	statsUsecase *usecases.StatsUsecase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUsecase *usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// Leaderboard returns the top referrers
// GET /api/v1/leaderboard
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.statsUsecase.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leaderboard": entries})
}

// AdminStats returns program-wide totals
// GET /api/v1/admin/stats
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.statsUsecase.AdminStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ListUsers returns a paginated user listing
// GET /api/v1/admin/users
func (h *StatsHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	users, meta, err := h.statsUsecase.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": meta,
	})
}
