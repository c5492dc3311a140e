package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidPhone           = errors.New("invalid phone number")
	ErrInvalidCode            = errors.New("invalid verification code")
	ErrTooManyRequests        = errors.New("too many requests")
	ErrExternalUnavailable    = errors.New("external service unavailable")

	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidPrice    = errors.New("invalid price")

	ErrEmptySelection        = errors.New("empty selection")
	ErrIncompleteContactInfo = errors.New("incomplete contact info")
	ErrNoContactChannel      = errors.New("merchant has no contact channel")

	ErrInvalidStatus     = errors.New("invalid order status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrConflict          = errors.New("concurrent modification")
)
