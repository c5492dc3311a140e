package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/server/http/dto"
)

// OrderHandler manages merchant order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Record handles POST /api/merchant/orders.
func (h *OrderHandler) Record(c *gin.Context) {
	var req dto.RecordOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	draft := model.OrderDraft{Contact: toContact(req.Contact)}
	for _, it := range req.Items {
		draft.Items = append(draft.Items, model.OrderDraftItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.facade.RecordOrder(c.Request.Context(), CurrentUserID(c), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrder(*order))
}

// List handles GET /api/merchant/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.MerchantOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/merchant/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_id"})
		return
	}
	order, err := h.facade.MerchantOrder(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrder(*order))
}

// History handles GET /api/merchant/orders/:id/history.
func (h *OrderHandler) History(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_id"})
		return
	}
	changes, err := h.facade.OrderHistory(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.StatusChangeResponse, 0, len(changes))
	for _, ch := range changes {
		response = append(response, dto.StatusChangeResponse{
			From:      string(ch.From),
			To:        string(ch.To),
			ActorID:   ch.ActorID,
			ChangedAt: ch.ChangedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Transition handles PATCH /api/merchant/orders/:id/status.
func (h *OrderHandler) Transition(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_id"})
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	order, changed, err := h.facade.TransitionOrder(c.Request.Context(), CurrentUserID(c), orderID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TransitionResponse{Order: toOrder(*order), Changed: changed})
}
