package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vncsmyrnk/bookclub-poll/internal/config"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
)

func setupRedisContainer(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", err
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		return nil, "", err
	}

	return container, endpoint, nil
}

func TestOpenWithoutAddressIsNop(t *testing.T) {
	ctx := context.Background()

	c, closeFn, err := Open(ctx, config.Redis{})
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())

	require.NoError(t, c.Set(ctx, &domain.ResultsSummary{PollID: "p1"}, 0))
	got, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisResultsCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, addr, err := setupRedisContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	c := NewRedisResultsCache(client, time.Minute)

	got, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	summary := &domain.ResultsSummary{
		PollID:         "p1",
		PollTitle:      "Book night",
		TotalResponses: 2,
		Questions: []domain.QuestionResult{
			{Question: "Stars?", Type: domain.QuestionTypeRating, Answers: map[string]int{"5": 2}},
			{Question: "Thoughts?", Type: domain.QuestionTypeText, Answers: map[string]int{}, TextResponses: []string{"Great book"}},
		},
	}
	gen, err := c.Generation(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)
	require.NoError(t, c.Set(ctx, summary, gen))

	ttl, err := client.TTL(ctx, "poll:p1:results").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	got, err = c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, summary, got)

	require.NoError(t, c.Invalidate(ctx, "p1"))
	got, err = c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	gen, err = c.Generation(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	// a summary computed before the invalidation is dropped
	require.NoError(t, c.Set(ctx, summary, 0))
	got, err = c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, summary, gen))
	got, err = c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}
