package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/vncsmyrnk/bookclub-poll/internal/config"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

// Open returns a Redis backed cache, or the no-op cache when no address is
// configured. The returned close func is never nil.
func Open(ctx context.Context, cfg config.Redis) (ports.ResultsCache, func() error, error) {
	if cfg.Addr == "" {
		return NewNop(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisResultsCache(client, cfg.TTL), client.Close, nil
}
