package dto

import "time"

// RecordOrderRequest is an order entered by the merchant.
type RecordOrderRequest struct {
	Contact ContactRequest     `json:"contact"`
	Items   []OrderItemRequest `json:"items" binding:"dive"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"max=10000"`
}

// StatusRequest asks for a status transition.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is an order header with optional items.
type OrderResponse struct {
	ID          int64               `json:"id"`
	MerchantID  int64               `json:"merchant_id"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	Contact     ContactRequest      `json:"contact"`
	Items       []OrderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type TransitionResponse struct {
	Order   OrderResponse `json:"order"`
	Changed bool          `json:"changed"`
}

type StatusChangeResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   int64     `json:"actor_id"`
	ChangedAt time.Time `json:"changed_at"`
}
