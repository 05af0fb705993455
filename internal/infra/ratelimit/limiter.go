package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bluehaven/internal/pkg/clock"
	"bluehaven/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type Bucket string

const (
	BucketDefault Bucket = "default"
	BucketAuth    Bucket = "auth"
	BucketBooking Bucket = "booking"
)

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime int64
}

// slidingWindow trims entries older than the window, then admits the request
// only while the sorted set is below the limit. Returns {allowed, remaining}.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local window_start = tonumber(ARGV[1])
local now = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local window_ms = tonumber(ARGV[4])
local member = ARGV[5]

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local current = redis.call('ZCARD', key)
if current >= limit then
	redis.call('PEXPIRE', key, window_ms)
	return {0, 0}
end

redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, window_ms)
return {1, limit - current - 1}
`)

// Limiter is a Redis sliding-window limiter keyed by client and bucket.
type Limiter struct {
	client redis.Scripter
	cfg    config.RateLimitConfig
	clock  clock.Clock
}

func NewLimiter(client redis.Scripter, cfg config.RateLimitConfig, clk clock.Clock) *Limiter {
	return &Limiter{client: client, cfg: cfg, clock: clk}
}

func (l *Limiter) Limit(bucket Bucket) int {
	switch bucket {
	case BucketAuth:
		return l.cfg.AuthRequests
	case BucketBooking:
		return l.cfg.BookingRequests
	default:
		return l.cfg.DefaultRequests
	}
}

func (l *Limiter) Allow(ctx context.Context, clientKey string, bucket Bucket) (*Result, error) {
	now := l.clock.Now()
	limit := l.Limit(bucket)
	reset := now.Add(l.cfg.Window).Unix()
	if !l.cfg.Enabled || limit <= 0 {
		return &Result{Allowed: true, Limit: limit, Remaining: limit, ResetTime: reset}, nil
	}

	key := fmt.Sprintf("bluehaven:ratelimit:%s:%s", bucket, clientKey)
	windowStart := now.Add(-l.cfg.Window)
	member := strconv.FormatInt(now.UnixNano(), 10)

	values, err := slidingWindow.Run(ctx, l.client, []string{key},
		windowStart.UnixMilli(),
		now.UnixMilli(),
		limit,
		l.cfg.Window.Milliseconds(),
		member,
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("unexpected redis response")
	}

	return &Result{
		Allowed:   values[0] == 1,
		Limit:     limit,
		Remaining: int(values[1]),
		ResetTime: reset,
	}, nil
}

// RetryAfter is the whole-second wait suggested to a rejected client.
func (l *Limiter) RetryAfter() time.Duration {
	return l.cfg.Window
}
