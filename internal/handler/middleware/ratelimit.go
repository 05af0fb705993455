package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bluehaven/internal/handler/httperr"
	"bluehaven/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, clientKey string, bucket ratelimit.Bucket) (*ratelimit.Result, error)
	RetryAfter() time.Duration
}

type RateLimitMiddleware struct {
	limiter RateLimiter
}

// NewRateLimitMiddleware accepts a nil limiter, in which case every request passes.
func NewRateLimitMiddleware(limiter RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

func (m *RateLimitMiddleware) Limit(bucket ratelimit.Bucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		res, err := m.limiter.Allow(c.Request.Context(), c.ClientIP(), bucket)
		if err != nil {
			// fail open while Redis is unreachable
			slog.Warn("rate limiter unavailable", "bucket", bucket, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetTime, 10))

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(m.limiter.RetryAfter().Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
