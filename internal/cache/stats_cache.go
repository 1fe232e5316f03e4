package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"weepify/internal/stats"
)

// StatsCache keeps a user's computed dashboard for a short TTL. Every cry log
// mutation deletes the entry and plants a dirty marker; while the marker
// lives, reads bypass the cache entirely so the engine recomputes from the
// full history.
type StatsCache struct {
	client         *redisv9.Client
	statsTTL       time.Duration
	dirtyMarkerTTL time.Duration
}

func NewStatsCache(client *redisv9.Client, statsTTL, dirtyMarkerTTL time.Duration) *StatsCache {
	if statsTTL <= 0 {
		statsTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &StatsCache{
		client:         client,
		statsTTL:       statsTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *StatsCache) GetStats(ctx context.Context, userID uint) (*stats.Result, bool, error) {
	key := c.statsKey(userID)
	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get stats failed: %w", err)
	}

	var result stats.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached stats failed: %w", err)
	}
	return &result, true, nil
}

func (c *StatsCache) SetStats(ctx context.Context, userID uint, result stats.Result) error {
	key := c.statsKey(userID)
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal stats cache failed: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.statsTTL).Err(); err != nil {
		return fmt.Errorf("redis set stats failed: %w", err)
	}
	return nil
}

func (c *StatsCache) DeleteStats(ctx context.Context, userID uint) error {
	key := c.statsKey(userID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete stats failed: %w", err)
	}
	return nil
}

func (c *StatsCache) MarkDirty(ctx context.Context, userID uint) error {
	key := c.dirtyKey(userID)
	if err := c.client.Set(ctx, key, "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *StatsCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	key := c.dirtyKey(userID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *StatsCache) statsKey(userID uint) string {
	return fmt.Sprintf("cry:stats:%d", userID)
}

func (c *StatsCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("cry:stats:dirty:%d", userID)
}
