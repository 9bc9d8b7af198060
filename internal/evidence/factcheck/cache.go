package factcheck

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"veracity/pkg/platform/sentinel"
)

const keyPrefix = "veracity:factcheck:"

// Entry is a cached lookup outcome. Found=false records a confirmed
// "no claims" answer; upstream failures are never cached.
type Entry struct {
	Found  bool   `json:"found"`
	Result Result `json:"result"`
}

// Cache stores lookup outcomes keyed by query text.
type Cache interface {
	Get(ctx context.Context, query string) (Entry, error)
	Set(ctx context.Context, query string, entry Entry) error
}

// RedisCache is a Cache backed by Redis string keys with a fixed TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache builds a Redis-backed cache.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns sentinel.ErrNotFound on a miss.
func (c *RedisCache) Get(ctx context.Context, query string) (Entry, error) {
	raw, err := c.client.Get(ctx, CacheKey(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, fmt.Errorf("decode cached entry: %w", err)
	}
	return entry, nil
}

// Set stores entry for the cache TTL.
func (c *RedisCache) Set(ctx context.Context, query string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, CacheKey(query), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// CacheKey hashes the trimmed query so arbitrary user text never lands in a key.
func CacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(query)))
	return keyPrefix + hex.EncodeToString(sum[:])
}
