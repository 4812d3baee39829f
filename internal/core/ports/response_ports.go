package ports

import (
	"context"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
)

type ResponseRepository interface {
	Save(ctx context.Context, response *domain.Response) error
	GetByPollID(ctx context.Context, pollID string) ([]*domain.Response, error)
}

type SubmitResponseInput struct {
	PollID         string
	Responses      map[string]string
	RespondentName string
}

type ResponseService interface {
	Submit(ctx context.Context, input SubmitResponseInput) (*domain.Response, error)
	ListByPoll(ctx context.Context, pollID string) ([]*domain.Response, error)
}
