package model

import "github.com/shopspring/decimal"

// CartLine is one product entry in a user's cart joined with the live
// product and merchant data.
type CartLine struct {
	ID              int64
	UserID          int64
	ProductID       int64
	ProductName     string
	UnitPrice       decimal.Decimal
	Quantity        int
	Stock           *int
	MerchantID      int64
	MerchantName    string
	MerchantChannel string
}

// Subtotal returns unit price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MerchantGroup is the subset of a cart belonging to one merchant.
type MerchantGroup struct {
	MerchantID   int64
	MerchantName string
	Channel      string
	Lines        []CartLine
	Subtotal     decimal.Decimal
}

// MaxQuantity bounds a single cart line or order item.
const MaxQuantity = 10000

// ValidQuantity reports whether q is within 1..MaxQuantity.
func ValidQuantity(q int) bool {
	return q >= 1 && q <= MaxQuantity
}
