package usecase

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/polkiloo/campusmart/internal/config"
	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
)

// HandoffComposer turns a merchant group into a chat message.
type HandoffComposer struct {
	printer  *message.Printer
	currency string
}

// NewHandoffComposer constructs HandoffComposer.
func NewHandoffComposer(cfg *config.Config) *HandoffComposer {
	return &HandoffComposer{
		printer:  message.NewPrinter(language.English),
		currency: strings.TrimSpace(cfg.Currency),
	}
}

// Compose builds the message for group minus excluded line ids. It is
// pure: identical input yields an identical message.
func (h *HandoffComposer) Compose(group model.MerchantGroup, excluded []int64, contact model.ContactInfo) (*model.Handoff, error) {
	skip := make(map[int64]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	var selected []model.CartLine
	total := decimal.Zero
	for _, line := range group.Lines {
		if _, ok := skip[line.ID]; ok {
			continue
		}
		selected = append(selected, line)
		total = total.Add(line.Subtotal())
	}
	if len(selected) == 0 {
		return nil, domainErrors.ErrEmptySelection
	}
	if !contact.Complete() {
		return nil, domainErrors.ErrIncompleteContactInfo
	}

	var b strings.Builder
	h.printer.Fprintf(&b, "Hello %s, I would like to order:\n", group.MerchantName)
	for _, line := range selected {
		h.printer.Fprintf(&b, "- %s x%s = %s\n", line.ProductName, strconv.Itoa(line.Quantity), h.amount(line.Subtotal()))
	}
	h.printer.Fprintf(&b, "Total: %s\n\n", h.amount(total))
	h.printer.Fprintf(&b, "Name: %s %s\n", strings.TrimSpace(contact.FirstName), strings.TrimSpace(contact.LastName))
	h.printer.Fprintf(&b, "Location: %s\n", strings.TrimSpace(contact.Location))
	h.printer.Fprintf(&b, "Phone: %s", strings.TrimSpace(contact.Phone))

	return &model.Handoff{
		MerchantID:   group.MerchantID,
		MerchantName: group.MerchantName,
		Lines:        selected,
		Total:        total,
		Message:      b.String(),
	}, nil
}

// DeepLink returns the click-to-chat URI for channel carrying msg.
func (h *HandoffComposer) DeepLink(channel, msg string) (string, error) {
	return ChatLink(channel, msg)
}

// amount renders v with two decimals and grouped thousands. Only the
// integer part goes through the locale printer so no digit is lost.
func (h *HandoffComposer) amount(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	r := v.Abs().Round(2)
	fixed := r.StringFixed(2)
	s := sign + h.printer.Sprint(number.Decimal(r.IntPart())) + fixed[strings.IndexByte(fixed, '.'):]
	if h.currency != "" {
		s += " " + h.currency
	}
	return s
}
