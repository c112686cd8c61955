package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/havenbridge/homecare-api/internal/core/ports"
)

const (
	overviewKey = "overview:dashboard"
	overviewTTL = 30 * time.Second
)

// OverviewCache holds the rendered admin dashboard aggregation for a short
// TTL so repeated loads do not re-run a dozen count queries.
type OverviewCache struct {
	client *redis.Client
}

func NewOverviewCache(client *redis.Client) *OverviewCache {
	return &OverviewCache{client: client}
}

// Get returns the cached overview, or nil on a miss.
func (c *OverviewCache) Get(ctx context.Context) (*ports.Overview, error) {
	raw, err := c.client.Get(ctx, overviewKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("overview cache get: %w", err)
	}

	var o ports.Overview
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("overview cache decode: %w", err)
	}
	return &o, nil
}

func (c *OverviewCache) Set(ctx context.Context, o *ports.Overview) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("overview cache encode: %w", err)
	}
	return c.client.Set(ctx, overviewKey, raw, overviewTTL).Err()
}
