package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yaparim/marketplace/internal/core/domain"
)

const (
	statsKey        = "yaparim:stats"
	defaultStatsTTL = 30 * time.Second
)

// StatsCache keeps the latest platform counters in Redis for a short TTL.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache wraps client. A non-positive ttl falls back to 30s.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*domain.Stats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var s domain.Stats
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &s, nil
}

func (c *StatsCache) Set(ctx context.Context, s *domain.Stats) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
