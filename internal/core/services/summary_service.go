package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type summaryService struct {
	pollRepo ports.PollRepository
	results  *ResultsService
}

// NewSummaryService builds the batch job that recomputes the results of every
// poll and stores them in the results cache.
func NewSummaryService(pollRepo ports.PollRepository, results *ResultsService) ports.SummaryService {
	return &summaryService{
		pollRepo: pollRepo,
		results:  results,
	}
}

func (s *summaryService) SummarizeAll(ctx context.Context) error {
	polls, err := s.pollRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all polls: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(polls))

	for _, poll := range polls {
		wg.Add(1)
		go func(p *domain.Poll) {
			defer wg.Done()
			if _, err := s.results.compute(ctx, p); err != nil {
				errChan <- fmt.Errorf("failed to summarize poll %s: %w", p.ID, err)
			}
		}(poll)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
