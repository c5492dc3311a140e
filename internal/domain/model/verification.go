package model

import "time"

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// CodeStatus is derived from a verification code's timestamps.
type CodeStatus string

const (
	CodeStatusPending  CodeStatus = "pending"
	CodeStatusConsumed CodeStatus = "consumed"
	CodeStatusExpired  CodeStatus = "expired"
)

// VerificationCode is a one-time code issued to prove control of a phone.
type VerificationCode struct {
	ID         string
	Phone      string
	Code       string
	OwnerID    int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}

// StatusAt derives the code status at the given instant. A code whose
// expiry equals now is already expired.
func (v VerificationCode) StatusAt(now time.Time) CodeStatus {
	if v.ConsumedAt != nil {
		return CodeStatusConsumed
	}
	if !now.Before(v.ExpiresAt) {
		return CodeStatusExpired
	}
	return CodeStatusPending
}

// VerificationOutcome explains the result of a validation attempt.
type VerificationOutcome string

const (
	OutcomeVerified VerificationOutcome = "verified"
	OutcomeMismatch VerificationOutcome = "mismatch"
	OutcomeExpired  VerificationOutcome = "expired"
	OutcomeConsumed VerificationOutcome = "consumed"
	OutcomeNoCode   VerificationOutcome = "no_code"
)

// DeliveryMethod is how a verification code reached the user.
type DeliveryMethod string

const (
	DeliveryAPI         DeliveryMethod = "api"
	DeliveryClickToSend DeliveryMethod = "click_to_send"
	DeliveryUnavailable DeliveryMethod = "unavailable"
)

// DeliveryResult describes a dispatch attempt. DeepLink is set only for
// click-to-send.
type DeliveryResult struct {
	Method   DeliveryMethod
	DeepLink string
}

// VerificationRequest is returned to the caller after a code was issued.
type VerificationRequest struct {
	Method    DeliveryMethod
	DeepLink  string
	ExpiresAt time.Time
}

// VerificationResult is the outcome of a validation attempt.
type VerificationResult struct {
	Verified bool
	Outcome  VerificationOutcome
	Phone    string
}
