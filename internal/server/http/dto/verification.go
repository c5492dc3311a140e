package dto

import "time"

// VerificationRequest starts phone verification.
type VerificationRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
}

// VerificationResponse tells the client how the code was delivered.
type VerificationResponse struct {
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
	DeepLink  string    `json:"deep_link,omitempty"`
}

// ConfirmRequest carries the code typed by the user.
type ConfirmRequest struct {
	Code string `json:"code" binding:"required"`
}

// ConfirmResponse reports the validation outcome.
type ConfirmResponse struct {
	Verified bool   `json:"verified"`
	Outcome  string `json:"outcome"`
}
