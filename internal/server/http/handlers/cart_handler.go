package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/campusmart/internal/server/http/dto"
)

// CartHandler manages the user's cart and handoffs.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/user/cart.
func (h *CartHandler) Get(c *gin.Context) {
	lines, groups, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Lines: toCartLines(lines), Groups: toGroups(groups)})
}

// Add handles POST /api/user/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	line, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartLine(*line))
}

// Update handles PATCH /api/user/cart/items/:id.
func (h *CartHandler) Update(c *gin.Context) {
	lineID, ok := pathID(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_id"})
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	line, err := h.facade.UpdateCartLine(c.Request.Context(), CurrentUserID(c), lineID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartLine(*line))
}

// Remove handles DELETE /api/user/cart/items/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	lineID, ok := pathID(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_id"})
		return
	}
	if err := h.facade.RemoveCartLine(c.Request.Context(), CurrentUserID(c), lineID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Handoff handles POST /api/user/cart/handoff.
func (h *CartHandler) Handoff(c *gin.Context) {
	var req dto.HandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	handoff, err := h.facade.ComposeHandoff(c.Request.Context(), CurrentUserID(c), req.MerchantID, req.ExcludedLineIDs, toContact(req.Contact))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HandoffResponse{
		MerchantID:   handoff.MerchantID,
		MerchantName: handoff.MerchantName,
		Lines:        toCartLines(handoff.Lines),
		Total:        amount(handoff.Total),
		Message:      handoff.Message,
		DeepLink:     handoff.DeepLink,
	})
}
