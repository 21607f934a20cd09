package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"referral-hub.backend/internal/domain/entities"
	domainerrors "referral-hub.backend/internal/domain/errors"
	"referral-hub.backend/internal/interfaces/http/response"
	"referral-hub.backend/internal/usecases"
)

// ReferralHandler handles tracking links, click tracking and analytics
type ReferralHandler struct {
	referralUsecase *usecases.ReferralUsecase
	authUsecase     *usecases.AuthUsecase
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUsecase *usecases.ReferralUsecase, authUsecase *usecases.AuthUsecase) *ReferralHandler {
	return &ReferralHandler{
		referralUsecase: referralUsecase,
		authUsecase:     authUsecase,
	}
}

// CreateLink creates a tracking link for the caller
// POST /api/v1/referrals
func (h *ReferralHandler) CreateLink(c *gin.Context) {
	user, ok := currentUser(c, h.authUsecase)
	if !ok {
		return
	}

	var input entities.CreateReferralLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	link, err := h.referralUsecase.CreateLink(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"referral": link})
}

// ListLinks returns the caller's tracking links
// GET /api/v1/referrals
func (h *ReferralHandler) ListLinks(c *gin.Context) {
	user, ok := currentUser(c, h.authUsecase)
	if !ok {
		return
	}

	links, err := h.referralUsecase.ListLinks(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if links == nil {
		links = []*entities.ReferralLink{}
	}

	response.Success(c, http.StatusOK, gin.H{"referrals": links})
}

// TrackClick records a click on a tracking link. Public: the visitor is not
// authenticated.
// POST /api/v1/track-click/:code
func (h *ReferralHandler) TrackClick(c *gin.Context) {
	code := c.Param("code")

	err := h.referralUsecase.TrackClick(c.Request.Context(), code, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, domainerrors.ErrReferralLinkNotFound) {
			response.Error(c, domainerrors.NotFound("Referral link not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Click tracked successfully"})
}

// Analytics returns the caller's click aggregation report
// GET /api/v1/referrals/analytics
func (h *ReferralHandler) Analytics(c *gin.Context) {
	user, ok := currentUser(c, h.authUsecase)
	if !ok {
		return
	}

	report, err := h.referralUsecase.Analytics(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	if report.TopLinks == nil {
		report.TopLinks = []*entities.ReferralLink{}
	}

	response.Success(c, http.StatusOK, report)
}
