// Package cache provides a Redis-backed read-through cache for expensive
// query results, following the go-redis/v9 client usage patterns seen
// throughout the backend's storage layer.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 60 * time.Second

// QueryCache wraps a redis.Client with JSON marshal/unmarshal convenience
// and a read-through GetOrSet helper.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache creates a QueryCache. A ttl <= 0 falls back to defaultTTL.
func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &QueryCache{client: client, ttl: ttl}
}

// Get reads the value stored at key and unmarshals it into dest. Returns
// redis.Nil, unwrapped, on a cache miss so callers can distinguish a miss
// from any other failure.
func (c *QueryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set marshals value and stores it at key with the cache's configured TTL.
func (c *QueryCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Delete removes key from the cache.
func (c *QueryCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// GetOrSet attempts to populate dest from the cache; on a miss, it invokes
// loader, decodes the result into dest via a JSON round-trip, and writes
// it back to the cache in the background so a slow cache write never
// delays the caller. A loader error is returned unwrapped and nothing is
// cached.
func (c *QueryCache) GetOrSet(ctx context.Context, key string, dest interface{}, loader func() (interface{}, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if err != redis.Nil {
		return err
	}

	value, err := loader()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return err
	}

	go func() {
		setCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.client.Set(setCtx, key, data, c.ttl).Err()
	}()

	return nil
}
