// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vantran/mercato/internal/platform/constants"
)

// snapshotKey addresses the single cached statistics document.
const snapshotKey = constants.RedisPrefixDashboard + "snapshot"

// # Redis Cache

// RedisStatsCache implements [StatsCache] on top of Redis.
//
// The snapshot is stored as one JSON document under a fixed key; the TTL is
// what enforces freshness, no explicit invalidation happens on writes.
type RedisStatsCache struct {
	client *redis.Client
}

// NewStatsCache constructs a Redis backed snapshot cache.
func NewStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

/*
Get returns the cached snapshot.

Returns:
  - *Stats: The cached snapshot, or nil on a cache miss
  - error: Redis or decoding failures (a miss is not an error)
*/
func (cache *RedisStatsCache) Get(context context.Context) (*Stats, error) {
	payload, err := cache.client.Get(context, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_stats_cache_get_failed: %w", err)
	}

	stats := &Stats{}
	if err := json.Unmarshal(payload, stats); err != nil {
		return nil, fmt.Errorf("redis_stats_cache_decode_failed: %w", err)
	}

	return stats, nil
}

/*
Set stores a snapshot with the given lifetime.

Parameters:
  - context: context.Context
  - stats: *Stats (snapshot to cache)
  - timeToLive: time.Duration (staleness bound)

Returns:
  - error: Encoding or Redis failures
*/
func (cache *RedisStatsCache) Set(context context.Context, stats *Stats, timeToLive time.Duration) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("redis_stats_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, snapshotKey, payload, timeToLive).Err(); err != nil {
		return fmt.Errorf("redis_stats_cache_set_failed: %w", err)
	}

	return nil
}
