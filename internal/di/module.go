package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/campusmart/internal/adapter/messaging"
	"github.com/polkiloo/campusmart/internal/app"
	"github.com/polkiloo/campusmart/internal/config"
	"github.com/polkiloo/campusmart/internal/logger"
	"github.com/polkiloo/campusmart/internal/metrics"
	"github.com/polkiloo/campusmart/internal/pkg/auth"
	"github.com/polkiloo/campusmart/internal/pkg/throttle"
	"github.com/polkiloo/campusmart/internal/server/http/router"
	"github.com/polkiloo/campusmart/internal/storage/postgres"
	"github.com/polkiloo/campusmart/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended
// last so callers can replace any dependency.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		throttle.Module,
		postgres.Module,
		messaging.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) router.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
