package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Merchant is a seller profile owned by a user. Channel is the phone
// number used for chat handoffs.
type Merchant struct {
	ID        int64
	OwnerID   int64
	Name      string
	Channel   string
	CreatedAt time.Time
}

// Product is a merchant's catalog entry. A nil Stock means untracked.
type Product struct {
	ID         int64
	MerchantID int64
	Name       string
	Price      decimal.Decimal
	Stock      *int
	CreatedAt  time.Time
}

// MaxStock bounds a tracked stock level.
const MaxStock = 1_000_000

var (
	// MaxPrice is the largest accepted unit price.
	MaxPrice = decimal.RequireFromString("999999.99")
	// MaxAmount is the largest value a stored amount column can hold.
	MaxAmount = decimal.RequireFromString("9999999999.99")
)

// NormalizePrice rounds p to cents and reports whether the result is a
// sellable price.
func NormalizePrice(p decimal.Decimal) (decimal.Decimal, bool) {
	p = p.Round(2)
	return p, p.IsPositive() && p.LessThanOrEqual(MaxPrice)
}
