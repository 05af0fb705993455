package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bluehaven/internal/domain/calendar"

	"github.com/redis/go-redis/v9"
)

const availabilityKey = "bluehaven:availability:blocked"

// AvailabilityCache stores the blocked-date set as a JSON array of day strings.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context) (calendar.Set, bool, error) {
	raw, err := c.client.Get(ctx, availabilityKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false, err
	}
	return calendar.SetFromStrings(days), true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, blocked calendar.Set) error {
	raw, err := json.Marshal(blocked.Strings())
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey, raw, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, availabilityKey).Err()
}
