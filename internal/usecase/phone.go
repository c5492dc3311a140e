package usecase

import (
	"regexp"
	"strings"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
)

var (
	e164        = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)
	phoneFiller = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// NormalizePhone returns the E.164 form of raw or ErrInvalidPhone.
func NormalizePhone(raw string) (string, error) {
	phone := phoneFiller.Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(phone, "00") {
		phone = "+" + phone[2:]
	}
	if !e164.MatchString(phone) {
		return "", domainErrors.ErrInvalidPhone
	}
	return phone, nil
}
