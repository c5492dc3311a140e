package usecase

import (
	"net/url"
	"strings"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
)

const clickToChatBase = "https://wa.me/"

// ChatLink builds a click-to-chat URI that opens a conversation with phone
// and pre-fills text. Spaces are encoded as %20.
func ChatLink(phone, text string) (string, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if digits == "" {
		return "", domainErrors.ErrNoContactChannel
	}
	link := clickToChatBase + digits
	if text == "" {
		return link, nil
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20"), nil
}
