package services

import (
	"context"
	"log/slog"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger/sl"
)

// ResultsService computes poll results, serving them from the cache when possible.
type ResultsService struct {
	pollRepo     ports.PollRepository
	responseRepo ports.ResponseRepository
	cache        ports.ResultsCache
	log          *slog.Logger
}

func NewResultsService(pollRepo ports.PollRepository, responseRepo ports.ResponseRepository, cache ports.ResultsCache, log *slog.Logger) *ResultsService {
	return &ResultsService{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		cache:        cache,
		log:          log.With(slog.String("component", "services/results")),
	}
}

func (s *ResultsService) GetResults(ctx context.Context, pollID string) (*domain.ResultsSummary, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, pollID)
	if err != nil {
		s.log.Warn("failed to read cached results", slog.String("poll_id", pollID), sl.Err(err))
	}
	if cached != nil {
		return cached, nil
	}

	return s.compute(ctx, poll)
}

// compute aggregates the current responses of poll and refreshes the cache.
// The generation is read before the responses, so a submission landing while
// they load keeps the outdated summary out of the cache.
func (s *ResultsService) compute(ctx context.Context, poll *domain.Poll) (*domain.ResultsSummary, error) {
	generation, genErr := s.cache.Generation(ctx, poll.ID)
	if genErr != nil {
		s.log.Warn("failed to read results generation", slog.String("poll_id", poll.ID), sl.Err(genErr))
	}

	responses, err := s.responseRepo.GetByPollID(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	for i, q := range poll.Questions {
		if !q.Type.IsKnown() {
			s.log.Warn("question has no aggregation rule",
				slog.String("poll_id", poll.ID),
				slog.Int("index", i),
				slog.String("type", string(q.Type)),
			)
		}
	}

	summary := Aggregate(poll, responses)

	if genErr != nil {
		return summary, nil
	}
	if err := s.cache.Set(ctx, summary, generation); err != nil {
		s.log.Warn("failed to cache results", slog.String("poll_id", poll.ID), sl.Err(err))
	}

	return summary, nil
}
