package throttle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/campusmart/internal/config"
)

const issueNamespace = "verification:issue"

// Module provides the verification issue limiter. Redis is used when
// REDIS_URL is set, otherwise limits are kept in memory.
var Module = fx.Provide(newIssueLimiter)

type limiterParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newIssueLimiter(p limiterParams) (Limiter, error) {
	if p.Config.RedisURL == "" {
		p.Logger.Info("issue throttling uses in-memory limiter")
		return NewMemoryLimiter(p.Config.IssueLimit, p.Config.IssueLimitWindow), nil
	}

	opts, err := redis.ParseURL(p.Config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	p.Logger.Info("issue throttling uses redis", slog.String("addr", opts.Addr))
	return NewRedisLimiter(client, issueNamespace, p.Config.IssueLimit, p.Config.IssueLimitWindow), nil
}
