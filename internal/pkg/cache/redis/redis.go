package redisCache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Config holds the connection settings for the backing Redis.
type Config struct {
	Addr       string // host:port
	Password   string
	DB         int
	MaxRetries int
}

// NewClient creates a new redis client
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: cfg.MaxRetries,
	})
}

// Ping checks that the server answers PING.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		opts := client.Options()
		return fmt.Errorf("ping redis addr = %s, db = %d: %w", opts.Addr, opts.DB, err)
	}
	return nil
}
