package model

import "time"

// User represents a registered customer of the marketplace.
type User struct {
	ID              int64
	Login           string
	PasswordHash    string
	Phone           string
	PhoneVerifiedAt *time.Time
	CreatedAt       time.Time
}

// PhoneVerified reports whether the user has confirmed a phone number.
func (u User) PhoneVerified() bool {
	return u.Phone != "" && u.PhoneVerifiedAt != nil
}
