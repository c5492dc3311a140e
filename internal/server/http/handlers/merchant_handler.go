package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/campusmart/internal/server/http/dto"
)

// MerchantHandler serves merchant profile and catalog endpoints.
type MerchantHandler struct {
	facade MerchantFacade
}

// NewMerchantHandler constructs MerchantHandler.
func NewMerchantHandler(facade MerchantFacade) *MerchantHandler {
	return &MerchantHandler{facade: facade}
}

// Open handles POST /api/merchant.
func (h *MerchantHandler) Open(c *gin.Context) {
	var req dto.OpenMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	m, err := h.facade.OpenMerchant(c.Request.Context(), CurrentUserID(c), req.Name, req.Channel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MerchantResponse{ID: m.ID, Name: m.Name, Channel: m.Channel, CreatedAt: m.CreatedAt})
}

// AddProduct handles POST /api/merchant/products.
func (h *MerchantHandler) AddProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "invalid_price"})
		return
	}

	p, err := h.facade.AddProduct(c.Request.Context(), CurrentUserID(c), req.Name, price, req.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProduct(*p))
}

// Products handles GET /api/merchant/products.
func (h *MerchantHandler) Products(c *gin.Context) {
	products, err := h.facade.MerchantProducts(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProducts(products))
}

// Catalog handles the public GET /api/merchants/:id/products.
func (h *MerchantHandler) Catalog(c *gin.Context) {
	merchantID, ok := pathID(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_id"})
		return
	}
	products, err := h.facade.Catalog(c.Request.Context(), merchantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProducts(products))
}
