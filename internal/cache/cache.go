package cache

import (
	"context"
	"log"
	"time"

	"community-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache is an explicitly constructed redis-backed response cache.
// All entries carry a TTL; Invalidate removes by exact key, and
// InvalidatePrefix clears a whole keyspace (e.g. reference lists)
type Cache struct {
	client *redis.Client
}

// New connects to redis. A nil Cache is returned on connection failure so
// callers degrade to uncached operation instead of failing startup
func New(cfg *config.Config) *Cache {
	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Invalid redis URL, caching disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, caching disabled: %v", err)
		return nil
	}

	log.Println("Connected to redis cache")
	return &Cache{client: client}
}

// Ping reports whether the redis connection is alive
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the cached bytes for key, or ok=false on miss or error
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores bytes under key with the given TTL. Errors are ignored:
// a failed cache write must never fail the request
func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v", key, err)
	}
}

// Invalidate removes one key
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, key)
}

// InvalidatePrefix removes every key under prefix
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
