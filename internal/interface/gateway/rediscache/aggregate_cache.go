// Package rediscache caches the stats read model in Redis. Without a
// configured REDIS_URL the cache runs disabled and every read is a miss.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
	"github.com/bejranonda/ThaiGov2569/internal/domain/service"
)

const aggregateKey = "thaigov2569:stats:aggregate"

// AggregateCache is the Redis implementation of service.AggregateCache.
type AggregateCache struct {
	client  *redis.Client
	ttl     time.Duration
	enabled bool
}

// NewAggregateCache connects to Redis. Any configuration or connection
// problem yields a disabled cache rather than an error: stats still work,
// just without caching.
func NewAggregateCache(redisURL string, ttl time.Duration) service.AggregateCache {
	if redisURL == "" {
		slog.Info("redis not configured, aggregate cache disabled")
		return &AggregateCache{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Warn("failed to parse REDIS_URL, aggregate cache disabled", slog.Any("error", err))
		return &AggregateCache{}
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis connection failed, aggregate cache disabled", slog.Any("error", err))
		return &AggregateCache{}
	}

	slog.Info("aggregate cache enabled", slog.Duration("ttl", ttl))
	return &AggregateCache{client: client, ttl: ttl, enabled: true}
}

// Get returns the cached aggregate, or (nil, nil) on a miss or when the
// cache is disabled.
func (c *AggregateCache) Get(ctx context.Context) (*entity.Aggregate, error) {
	if !c.enabled {
		return nil, nil
	}
	data, err := c.client.Get(ctx, aggregateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var agg entity.Aggregate
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// Set stores the aggregate for the configured TTL.
func (c *AggregateCache) Set(ctx context.Context, agg *entity.Aggregate) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(agg)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, aggregateKey, data, c.ttl).Err()
}

// Invalidate drops the cached aggregate.
func (c *AggregateCache) Invalidate(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	return c.client.Del(ctx, aggregateKey).Err()
}
