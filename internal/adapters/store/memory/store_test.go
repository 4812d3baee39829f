package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

func TestStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Create(ctx, "polls", map[string]any{"title": "Book Pick", "tags": []any{"a"}})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	doc, err := s.Get(ctx, "polls", id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "Book Pick", doc.Data["title"])

	// Mutating a returned document does not leak into the store.
	doc.Data["title"] = "changed"
	doc.Data["tags"].([]any)[0] = "b"

	again, err := s.Get(ctx, "polls", id)
	require.NoError(t, err)
	assert.Equal(t, "Book Pick", again.Data["title"])
	assert.Equal(t, []any{"a"}, again.Data["tags"])
}

func TestStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Get(ctx, "polls", "nope")
	assert.ErrorIs(t, err, ports.ErrDocumentNotFound)

	_, err = s.Create(ctx, "polls", map[string]any{})
	require.NoError(t, err)

	_, err = s.Get(ctx, "polls", "nope")
	assert.ErrorIs(t, err, ports.ErrDocumentNotFound)
}

func TestStoreListAndQuery(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	docs, err := s.List(ctx, "responses")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NotNil(t, docs)

	first, _ := s.Create(ctx, "responses", map[string]any{"poll_id": "p1"})
	_, _ = s.Create(ctx, "responses", map[string]any{"poll_id": "p2"})
	third, _ := s.Create(ctx, "responses", map[string]any{"poll_id": "p1"})
	_, _ = s.Create(ctx, "polls", map[string]any{"poll_id": "p1"})

	all, err := s.List(ctx, "responses")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := s.Query(ctx, "responses", "poll_id", "p1")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, first, matched[0].ID)
	assert.Equal(t, third, matched[1].ID)

	none, err := s.Query(ctx, "responses", "poll_id", "p3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
