package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/server/http/dto"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domainErrors.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{domainErrors.ErrInvalidPhone, http.StatusUnprocessableEntity, "invalid_phone"},
	{domainErrors.ErrInvalidCode, http.StatusUnprocessableEntity, "invalid_code"},
	{domainErrors.ErrInvalidQuantity, http.StatusUnprocessableEntity, "invalid_quantity"},
	{domainErrors.ErrInvalidPrice, http.StatusUnprocessableEntity, "invalid_price"},
	{domainErrors.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
	{domainErrors.ErrEmptySelection, http.StatusUnprocessableEntity, "empty_selection"},
	{domainErrors.ErrIncompleteContactInfo, http.StatusUnprocessableEntity, "incomplete_contact_info"},
	{domainErrors.ErrNoContactChannel, http.StatusUnprocessableEntity, "no_contact_channel"},
	{domainErrors.ErrAuthenticationRequired, http.StatusUnauthorized, "authentication_required"},
	{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{domainErrors.ErrNotFound, http.StatusNotFound, "not_found"},
	{domainErrors.ErrAlreadyExists, http.StatusConflict, "already_exists"},
	{domainErrors.ErrIllegalTransition, http.StatusConflict, "illegal_transition"},
	{domainErrors.ErrConflict, http.StatusConflict, "conflict"},
	{domainErrors.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
	{domainErrors.ErrExternalUnavailable, http.StatusServiceUnavailable, "messaging_unavailable"},
}

// respondError writes the JSON error for a facade failure. Unknown errors
// are attached to the context for the request logger and hidden from the
// client.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.AbortWithStatusJSON(m.status, dto.ErrorResponse{Error: m.code})
			return
		}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal_error"})
}

// respondBindError distinguishes unparsable bodies from failed validation.
func respondBindError(c *gin.Context, err error) {
	if fields := dto.FieldErrors(err); fields != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "invalid_input", Fields: fields})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed_request"})
}
