package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPageTTL = 5 * time.Minute

// PageCache stores rendered view payloads backed by Redis.
// Key format: page:<path>
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a PageCache wrapping the given Redis client. Entries
// expire after ttl even without an explicit invalidation.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = defaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

func (c *PageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("page cache get: %w", err)
	}
	return payload, true, nil
}

func (c *PageCache) Set(ctx context.Context, path string, payload []byte) error {
	if err := c.client.Set(ctx, c.key(path), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("page cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached rendering of path. Deleting a key that does not
// exist is a no-op in Redis, so invalidating an uncached path never fails.
func (c *PageCache) Invalidate(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, c.key(path)).Err(); err != nil {
		return fmt.Errorf("page cache invalidate: %w", err)
	}
	return nil
}

func (c *PageCache) key(path string) string {
	return "page:" + path
}
