package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
	"github.com/vncsmyrnk/bookclub-poll/internal/lib/logger/sl"
)

type responseService struct {
	pollRepo     ports.PollRepository
	responseRepo ports.ResponseRepository
	cache        ports.ResultsCache
	log          *slog.Logger
	now          func() time.Time
}

func NewResponseService(pollRepo ports.PollRepository, responseRepo ports.ResponseRepository, cache ports.ResultsCache, log *slog.Logger) ports.ResponseService {
	return &responseService{
		pollRepo:     pollRepo,
		responseRepo: responseRepo,
		cache:        cache,
		log:          log.With(slog.String("component", "services/response")),
		now:          time.Now,
	}
}

func (s *responseService) Submit(ctx context.Context, input ports.SubmitResponseInput) (*domain.Response, error) {
	if _, err := s.pollRepo.GetByID(ctx, input.PollID); err != nil {
		return nil, err
	}

	if len(input.Responses) == 0 {
		return nil, domain.ErrResponsesRequired
	}

	name := input.RespondentName
	if name == "" {
		name = domain.AnonymousRespondent
	}

	response := &domain.Response{
		PollID:         input.PollID,
		Responses:      input.Responses,
		RespondentName: name,
		SubmittedAt:    s.now().UTC(),
	}

	if err := s.responseRepo.Save(ctx, response); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, input.PollID); err != nil {
		s.log.Warn("failed to invalidate cached results", slog.String("poll_id", input.PollID), sl.Err(err))
	}

	return response, nil
}

func (s *responseService) ListByPoll(ctx context.Context, pollID string) ([]*domain.Response, error) {
	if _, err := s.pollRepo.GetByID(ctx, pollID); err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.GetByPollID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*domain.Response{}
	}
	return responses, nil
}
