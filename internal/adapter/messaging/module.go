package messaging

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/campusmart/internal/config"
	"github.com/polkiloo/campusmart/internal/usecase"
)

// Module exposes the message sender to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (usecase.MessageSender, error) {
	if !p.Config.MessagingConfigured() {
		p.Logger.Warn("messaging api not configured, verification codes use click-to-send")
		return Disabled{}, nil
	}
	return NewCloudAPIClient(p.Config.MessagingAPIURL, p.Config.MessagingSenderID, p.Config.MessagingAPIToken, p.Logger)
}
