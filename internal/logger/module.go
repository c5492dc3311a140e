package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/campusmart/internal/config"
)

// Module wires slog logger for dependency injection and routes fx events through it.
var Module = fx.Options(
	fx.Provide(newLogger),
	fx.WithLogger(newEventLogger),
)

func newLogger(cfg *config.Config) *slog.Logger {
	return New(cfg.LogLevel)
}

func newEventLogger(l *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: l}
}
