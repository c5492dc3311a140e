package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/campusmart/internal/server/http/dto"
)

// VerificationHandler serves phone verification endpoints.
type VerificationHandler struct {
	facade VerificationFacade
}

// NewVerificationHandler constructs VerificationHandler.
func NewVerificationHandler(facade VerificationFacade) *VerificationHandler {
	return &VerificationHandler{facade: facade}
}

// Request handles POST /api/user/phone/verification.
func (h *VerificationHandler) Request(c *gin.Context) {
	var req dto.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.facade.RequestVerification(c.Request.Context(), CurrentUserID(c), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.VerificationResponse{
		Method:    string(res.Method),
		ExpiresAt: res.ExpiresAt,
		DeepLink:  res.DeepLink,
	})
}

// Confirm handles POST /api/user/phone/verification/confirm. A wrong code
// is a normal 200 response with verified=false.
func (h *VerificationHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.facade.ConfirmVerification(c.Request.Context(), CurrentUserID(c), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmResponse{Verified: res.Verified, Outcome: string(res.Outcome)})
}
