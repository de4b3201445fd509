package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix  = "commplan:"
	defaultTTL = 5 * time.Minute
)

// Client is a read-through cache for aggregate reads. A nil Client is valid
// and disables caching entirely, so callers never have to branch on
// configuration.
type Client struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New connects to the Redis instance at the given URL. An empty URL returns a
// nil client, which turns every cache operation into a no-op.
func New(redisURL string, logger *zap.Logger) (*Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: defaultTTL, logger: logger}, nil
}

// Enabled reports whether caching is active
func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Key builds the cache key for an entity operation
func Key(entity, operation, id string) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, entity, operation, id)
}

// GetJSON loads a cached value into dest. The boolean reports a cache hit.
// Cache failures are logged and reported as misses so reads fall through to
// the store.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("Cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSON stores a value under the key with the default TTL
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}) {
	if !c.Enabled() {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes all keys matching the given patterns (relative to the
// cache namespace).
func (c *Client) Invalidate(ctx context.Context, patterns ...string) {
	if !c.Enabled() {
		return
	}

	for _, pattern := range patterns {
		keys, err := c.scanKeys(ctx, keyPrefix+pattern)
		if err != nil {
			c.logger.Warn("Cache scan failed", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warn("Cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
			}
		}
	}
}

// scanKeys collects the keys matching a pattern with SCAN, which cursors
// through the keyspace instead of blocking the server the way KEYS does.
func (c *Client) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

// Stats describes the current state of the cache namespace
type Stats struct {
	Enabled   bool      `json:"enabled"`
	Keys      int       `json:"keys"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats counts the keys in the cache namespace
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Enabled: c.Enabled(), Timestamp: time.Now()}
	if !c.Enabled() {
		return stats, nil
	}

	keys, err := c.scanKeys(ctx, keyPrefix+"*")
	if err != nil {
		return stats, err
	}
	stats.Keys = len(keys)
	return stats, nil
}

// Flush removes every key in the cache namespace
func (c *Client) Flush(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	keys, err := c.scanKeys(ctx, keyPrefix+"*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
