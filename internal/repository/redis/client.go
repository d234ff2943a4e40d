package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/space-reservation/internal/config"
	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Client is the connection shared by the space cache and the rate limiter
type Client struct {
	rdb *redis.Client
}

// NewClient connects to the configured Redis and checks it answers
func NewClient(cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an already configured go-redis client. Tests use
// it to point the cache and limiter at miniredis.
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping backs the readiness check
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
