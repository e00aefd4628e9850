package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis connection used for search-result and page caching.
// A nil *Client is valid and means caching is disabled; every method no-ops
// on a nil receiver so call sites never have to branch on configuration.
type Client struct {
	Redis *redis.Client
}

// ErrDisabled is returned by read operations on a disabled cache.
var ErrDisabled = fmt.Errorf("cache disabled")

// NewFromEnv builds a client from REDIS_HOST / REDIS_PORT / REDIS_PASSWORD.
// An unset REDIS_HOST disables caching and returns a nil client, not an error.
func NewFromEnv() *Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("REDIS_HOST not set, caching disabled")
		return nil
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return &Client{Redis: client}
}

// Enabled reports whether a Redis connection is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.Redis != nil
}

func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.Redis.Close()
}

// Ping verifies connectivity. A failed ping is logged by callers and treated
// as a cache miss, never as a hard error.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	return c.Redis.Ping(ctx).Err()
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	return c.Redis.Get(ctx, key).Result()
}

// IsMiss reports whether err is an ordinary cache miss rather than a failure.
func IsMiss(err error) bool {
	return err == redis.Nil
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	return c.Redis.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.Redis.Del(ctx, keys...).Err()
}

// Keys lists keys matching pattern via SCAN.
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	if !c.Enabled() {
		return nil, nil
	}

	var (
		cursor uint64
		found  []string
	)
	for {
		keys, next, err := c.Redis.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}
		found = append(found, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return found, nil
}

// DeletePattern removes every key matching pattern and returns the count.
func (c *Client) DeletePattern(ctx context.Context, pattern string) (int, error) {
	if !c.Enabled() {
		return 0, nil
	}

	keys, err := c.Keys(ctx, pattern)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	if err := c.Redis.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("failed to delete keys: %w", err)
	}
	return len(keys), nil
}
