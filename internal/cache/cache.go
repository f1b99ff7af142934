// Package cache stores small JSON documents (the analytics bundle) with a TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss the key is absent or expired
var ErrMiss = errors.New("cache miss")

// Cache JSON document cache
type Cache interface {
	// GetJSON decodes the value at key into dst, ErrMiss when absent
	GetJSON(ctx context.Context, key string, dst interface{}) error

	// SetJSON stores value at key for ttl
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete drops key, missing keys are not an error
	Delete(ctx context.Context, keys ...string) error

	// Counter reads the integer at key, 0 when absent
	Counter(ctx context.Context, key string) (int64, error)

	// Incr atomically increments the integer at key and returns the new value
	Incr(ctx context.Context, key string) (int64, error)
}

// ===========================================================================
// Redis implementation
// ===========================================================================

// RedisCache Cache over go-redis
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache wraps client, every key is prefixed with prefix
func NewRedisCache(client redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// NewRedisFromURL parses a redis:// URL and pings the server
func NewRedisFromURL(ctx context.Context, url, prefix string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisCache(client, prefix), nil
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dst interface{}) error {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *RedisCache) Counter(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Get(ctx, c.prefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", key, err)
	}
	return n, nil
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Incr(ctx, c.prefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return n, nil
}

// Close closes the underlying client
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// ===========================================================================
// Noop implementation (Redis not configured)
// ===========================================================================

// Noop never stores anything
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) GetJSON(ctx context.Context, key string, dst interface{}) error {
	return ErrMiss
}

func (Noop) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Noop) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (Noop) Counter(ctx context.Context, key string) (int64, error) {
	return 0, nil
}

func (Noop) Incr(ctx context.Context, key string) (int64, error) {
	return 0, nil
}
