// Package cache provides a small Redis-backed JSON cache used for
// dashboard metrics. A nil *Cache is valid and disables caching.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"rentdesk/internal/logger"
)

// Cache wraps a Redis client with JSON get/set helpers.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at the given address. Returns nil (caching
// disabled) when addr is empty or the server is unreachable.
func New(addr, password string) *Cache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Get().Warnf("Redis unavailable at %s, caching disabled: %v", addr, err)
		return nil
	}

	return &Cache{client: client}
}

// GetJSON fetches the value at key and unmarshals it into dest.
// Returns false on a miss or when the cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Get().Warnf("cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Get().Warnf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON marshals value and stores it at key with the given TTL. Errors
// are logged and swallowed; a broken cache never fails a request.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warnf("cache encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Get().Warnf("cache set %s: %v", key, err)
	}
}

// Delete removes keys from the cache.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Get().Warnf("cache delete: %v", err)
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
