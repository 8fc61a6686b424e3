package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

const cacheTTL = 10 * time.Minute

// RouteCache caches route rows by id as JSON blobs.
// Key format: route:<id>
type RouteCache struct {
	client *redis.Client
}

// NewRouteCache creates a RouteCache wrapping the given Redis client.
func NewRouteCache(client *redis.Client) *RouteCache {
	return &RouteCache{client: client}
}

// Get returns the cached route, or (nil, nil) on a miss.
func (c *RouteCache) Get(ctx context.Context, id int64) (*domain.Route, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("route cache get: %w", err)
	}

	var route domain.Route
	if err := json.Unmarshal(raw, &route); err != nil {
		// A corrupt entry is treated as a miss after clearing it.
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, nil
	}
	return &route, nil
}

// Set stores the route for cacheTTL.
func (c *RouteCache) Set(ctx context.Context, route *domain.Route) error {
	raw, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("route cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(route.RouteID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after a write.
func (c *RouteCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *RouteCache) key(id int64) string {
	return fmt.Sprintf("route:%d", id)
}
