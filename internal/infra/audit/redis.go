// Package audit records the outcome of verification attempts outside the verifier itself.
package audit

import (
	"context"
	"log/slog"

	"credcheck/config"
	"credcheck/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams defines the parameters required for the Redis client
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns a client for the configured URL, or nil when Redis is not configured.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Info("Redis not configured, attempt auditing disabled")

		return nil, nil //nolint:nilnil // Redis is optional
	}

	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
