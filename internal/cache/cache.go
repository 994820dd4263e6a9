package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/careslot/clinic-scheduler/internal/config"
)

// Cache is a thin Redis wrapper used for the read-heavy public doctor
// listing. An unreachable Redis degrades to cache misses; it never
// fails a request.
type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, value, ttl)
}

// InvalidatePrefix drops every key under the given prefix. Called on
// doctor writes so stale listings never outlive a profile change.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
