package rendercache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 2 * time.Second

// Cache stores rendered page payloads in Redis, keyed by request path.
// Mutating accessors invalidate paths after every successful write so the
// next read re-renders from the store.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr. If the connection cannot be established the
// cache degrades to a no-op and the service keeps running without it.
func New(addr string, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: failed to connect to Redis at %s: %v. Render caching disabled.", addr, err)
		return &Cache{}
	}
	log.Printf("Redis render cache connected at %s", addr)
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached payload for path, if any.
func (c *Cache) Get(path string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	payload, err := c.client.Get(ctx, path).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("render cache get %s: %v", path, err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a rendered payload under path.
func (c *Cache) Set(path string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, path, payload, c.ttl).Err(); err != nil {
		log.Printf("render cache set %s: %v", path, err)
	}
}

// Invalidate discards the cached renders for the given paths. Failures are
// logged and never surfaced to the caller; invalidation is fire-and-forget.
func (c *Cache) Invalidate(paths ...string) {
	if c == nil || c.client == nil || len(paths) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, paths...).Err(); err != nil {
		log.Printf("render cache invalidate %v: %v", paths, err)
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
