package bootstrap

import (
	"context"
	"log/slog"

	"bluehaven/internal/handler/middleware"
	"bluehaven/internal/infra/cache"
	"bluehaven/internal/infra/ratelimit"
	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"
	"bluehaven/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// CacheModule provides Redis-backed caching and rate limiting. With REDIS_ADDR unset
// the cache always misses and rate limiting is off.
var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewAvailabilityCache,
		NewRateLimiter,
		middleware.NewRateLimitMiddleware,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("redis disabled, availability cache and rate limiting are off")
		return nil, nil
	}
	client, cleanup, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client, nil
}

func NewAvailabilityCache(cfg config.Config, client *redis.Client) shared.AvailabilityCache {
	if client == nil {
		return shared.NopCache{}
	}
	return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL)
}

func NewRateLimiter(cfg config.Config, client *redis.Client, clk clock.Clock) middleware.RateLimiter {
	if client == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.NewLimiter(client, cfg.RateLimit, clk)
}
