package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ContactInfo is the customer data attached to a handoff.
type ContactInfo struct {
	FirstName string
	LastName  string
	Location  string
	Phone     string
}

// Complete reports whether every field is non-empty after trimming.
func (c ContactInfo) Complete() bool {
	for _, v := range []string{c.FirstName, c.LastName, c.Location, c.Phone} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Handoff is a composed order ready to be sent to a merchant.
type Handoff struct {
	MerchantID   int64
	MerchantName string
	Lines        []CartLine
	Total        decimal.Decimal
	Message      string
	DeepLink     string
}
