package dto

// AddCartItemRequest adds a product to the cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"max=10000"`
}

// UpdateCartItemRequest sets the quantity of a cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"max=10000"`
}

type CartLineResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
	Stock       *int   `json:"stock,omitempty"`
	MerchantID  int64  `json:"merchant_id"`
}

type MerchantGroupResponse struct {
	MerchantID   int64              `json:"merchant_id"`
	MerchantName string             `json:"merchant_name"`
	Lines        []CartLineResponse `json:"lines"`
	Subtotal     string             `json:"subtotal"`
}

// CartResponse is the cart as stored plus its per-merchant grouping.
type CartResponse struct {
	Lines  []CartLineResponse      `json:"lines"`
	Groups []MerchantGroupResponse `json:"groups"`
}

type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
}

// HandoffRequest composes an order message for one merchant's lines.
type HandoffRequest struct {
	MerchantID      int64          `json:"merchant_id" binding:"required,gt=0"`
	ExcludedLineIDs []int64        `json:"excluded_line_ids"`
	Contact         ContactRequest `json:"contact"`
}

type HandoffResponse struct {
	MerchantID   int64              `json:"merchant_id"`
	MerchantName string             `json:"merchant_name"`
	Lines        []CartLineResponse `json:"lines"`
	Total        string             `json:"total"`
	Message      string             `json:"message"`
	DeepLink     string             `json:"deep_link"`
}
