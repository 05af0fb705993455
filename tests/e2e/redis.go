//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bluehaven/internal/infra/cache"
	"bluehaven/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
	redisDBCounter     int
	redisDBMu          sync.Mutex
)

// NewRedisClient returns a client on a fresh logical database of the shared
// Redis container, flushed when the test ends.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve redis container address")

	redisDBMu.Lock()
	db := redisDBCounter % 16
	redisDBCounter++
	redisDBMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, closeFn, err := cache.NewClient(ctx, config.RedisConfig{
		Addr: info.Host + ":" + info.Port.Port(),
		DB:   db,
	})
	require.NoError(t, err, "redis connection failed")
	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := client.FlushDB(flushCtx).Err(); err != nil {
			slog.Warn("failed to flush redis database", "db", db, "error", err.Error())
		}
		closeFn()
	})
	return client
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "bluehaven-e2e"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer == nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := redisTestContainer.Terminate(ctx); err != nil {
				slog.Warn("failed to terminate redis container", "error", err.Error())
			}
		})
	})
}
