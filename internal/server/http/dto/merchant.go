package dto

import "time"

// OpenMerchantRequest creates the caller's merchant profile.
type OpenMerchantRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Channel string `json:"channel" binding:"required,phone"`
}

type MerchantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRequest adds a catalog entry. Price is a decimal string.
type ProductRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Price string `json:"price" binding:"required"`
	Stock *int   `json:"stock" binding:"omitempty,min=0,max=1000000"`
}

type ProductResponse struct {
	ID         int64  `json:"id"`
	MerchantID int64  `json:"merchant_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Stock      *int   `json:"stock,omitempty"`
}
