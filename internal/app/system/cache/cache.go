// Package cache wraps Redis as a fail-safe read-through cache. Dashboard
// payloads are the only thing stored here, so Redis being down or
// misconfigured must never fail a request: every error degrades to a miss.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client. A nil *Client is valid and behaves as an
// always-miss cache, which keeps call sites free of enablement checks.
type Client struct {
	rdb *redis.Client
}

// New connects a cache Client. It does not ping; connectivity problems show
// up as misses at read time.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached value, or nil on miss or any Redis failure.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike: treat as a miss.
		return nil
	}
	return b
}

// Set stores value under key with a TTL, ignoring Redis failures.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key, ignoring Redis failures.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, key).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
