package cache

import (
	"context"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type nopCache struct{}

// NewNop returns a ResultsCache that never stores anything, so every request
// recomputes results from the store.
func NewNop() ports.ResultsCache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string) (*domain.ResultsSummary, error) { return nil, nil }
func (nopCache) Generation(context.Context, string) (int64, error)          { return 0, nil }
func (nopCache) Set(context.Context, *domain.ResultsSummary, int64) error    { return nil }
func (nopCache) Invalidate(context.Context, string) error                    { return nil }
