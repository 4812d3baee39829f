package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type redisResultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultsCache stores summaries as JSON strings under poll:{id}:results
// and the poll generation as a counter under poll:{id}:generation.
func NewRedisResultsCache(client *redis.Client, ttl time.Duration) ports.ResultsCache {
	return &redisResultsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisResultsCache) key(pollID string) string {
	return fmt.Sprintf("poll:%s:results", pollID)
}

func (c *redisResultsCache) generationKey(pollID string) string {
	return fmt.Sprintf("poll:%s:generation", pollID)
}

func (c *redisResultsCache) Get(ctx context.Context, pollID string) (*domain.ResultsSummary, error) {
	data, err := c.client.Get(ctx, c.key(pollID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached results: %w", err)
	}

	var summary domain.ResultsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached results: %w", err)
	}
	return &summary, nil
}

func (c *redisResultsCache) Generation(ctx context.Context, pollID string) (int64, error) {
	return readGeneration(ctx, c.client, c.generationKey(pollID))
}

// Set writes summary only while the poll generation still equals generation.
// The generation key is watched, so an Invalidate racing with the write
// aborts the transaction and the stale summary is dropped.
func (c *redisResultsCache) Set(ctx context.Context, summary *domain.ResultsSummary, generation int64) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	genKey := c.generationKey(summary.PollID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(summary.PollID), data, c.ttl)
			return nil
		})
		return err
	}, genKey)

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache results: %w", err)
	}
	return nil
}

func (c *redisResultsCache) Invalidate(ctx context.Context, pollID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey(pollID))
		pipe.Del(ctx, c.key(pollID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached results: %w", err)
	}
	return nil
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, r getter, key string) (int64, error) {
	gen, err := r.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read results generation: %w", err)
	}
	return gen, nil
}
