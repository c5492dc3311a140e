package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/polkiloo/campusmart/internal/config"
	"github.com/polkiloo/campusmart/internal/domain/model"
)

// MessageSender pushes a text message to a phone number.
type MessageSender interface {
	SendText(ctx context.Context, to, body string) error
}

// DeliveryDispatcher delivers verification codes through the messaging
// API and falls back to a click-to-send link when the push fails.
type DeliveryDispatcher struct {
	sender          MessageSender
	fallbackNumber  string
	fallbackEnabled bool
	ttl             time.Duration
	logger          *slog.Logger
}

// NewDeliveryDispatcher constructs DeliveryDispatcher. A configured
// fallback number must be a valid phone number.
func NewDeliveryDispatcher(sender MessageSender, cfg *config.Config, logger *slog.Logger) (*DeliveryDispatcher, error) {
	fallback := strings.TrimSpace(cfg.MessagingFallbackNumber)
	if fallback != "" {
		phone, err := NormalizePhone(fallback)
		if err != nil {
			return nil, fmt.Errorf("messaging fallback number: %w", err)
		}
		fallback = phone
	}
	return &DeliveryDispatcher{
		sender:          sender,
		fallbackNumber:  fallback,
		fallbackEnabled: cfg.MessagingFallbackEnabled,
		ttl:             cfg.CodeTTL,
		logger:          logger,
	}, nil
}

// Send never fails; push errors are logged and turned into the fallback.
//
// In click-to-send mode the user is handed the code directly, so a
// successful validation no longer proves possession of the phone.
func (d *DeliveryDispatcher) Send(ctx context.Context, phone, code string) model.DeliveryResult {
	err := d.sender.SendText(ctx, phone, d.pushBody(code))
	if err == nil {
		return model.DeliveryResult{Method: model.DeliveryAPI}
	}
	d.logger.Warn("verification push failed", slog.String("error", err.Error()))

	if !d.fallbackEnabled {
		return model.DeliveryResult{Method: model.DeliveryUnavailable}
	}

	target := d.fallbackNumber
	if target == "" {
		target = phone
	}
	link, err := ChatLink(target, fallbackBody(code))
	if err != nil {
		d.logger.Error("click-to-send link failed", slog.String("error", err.Error()))
		return model.DeliveryResult{Method: model.DeliveryUnavailable}
	}
	d.logger.Warn("verification delivered via click-to-send")
	return model.DeliveryResult{Method: model.DeliveryClickToSend, DeepLink: link}
}

func (d *DeliveryDispatcher) pushBody(code string) string {
	return fmt.Sprintf("Your CampusMart verification code is %s. It expires in %d minutes.", code, int(d.ttl.Minutes()))
}

func fallbackBody(code string) string {
	return "CampusMart verification code: " + code
}
