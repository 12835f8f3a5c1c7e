// Package cache wraps the Redis collaborator. Core request handling never
// reads or writes through it; it exists for parity with the deployment
// environment and is health-checked by the readiness probe.
package cache

import (
	"context"

	"github.com/go-redis/redis/v8"
)

type Cache struct {
	client *redis.Client
}

// New builds a Cache from a redis:// URL. The connection is established
// lazily on first use; Ping is how callers find out it is dead.
func New(url string) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Cache{client: redis.NewClient(opts)}, nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
