package ports

import (
	"context"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
)

// ResultsCache holds computed summaries keyed by poll id. Get returns nil, nil
// on a miss.
//
// Every poll has a generation that Invalidate bumps. Callers read it before
// loading responses and pass it to Set, which drops the write when the
// generation moved in the meantime.
type ResultsCache interface {
	Get(ctx context.Context, pollID string) (*domain.ResultsSummary, error)
	Generation(ctx context.Context, pollID string) (int64, error)
	Set(ctx context.Context, summary *domain.ResultsSummary, generation int64) error
	Invalidate(ctx context.Context, pollID string) error
}

type ResultsService interface {
	GetResults(ctx context.Context, pollID string) (*domain.ResultsSummary, error)
}

type SummaryService interface {
	SummarizeAll(ctx context.Context) error
}
