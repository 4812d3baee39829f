package document

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type responseRepository struct {
	store ports.DocumentStore
}

func NewResponseRepository(store ports.DocumentStore) ports.ResponseRepository {
	return &responseRepository{
		store: store,
	}
}

func (r *responseRepository) Save(ctx context.Context, response *domain.Response) error {
	data, err := toData(response)
	if err != nil {
		return err
	}

	id, err := r.store.Create(ctx, ports.ResponsesCollection, data)
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	response.ID = id

	return nil
}

func (r *responseRepository) GetByPollID(ctx context.Context, pollID string) ([]*domain.Response, error) {
	docs, err := r.store.Query(ctx, ports.ResponsesCollection, "poll_id", pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}

	responses := make([]*domain.Response, 0, len(docs))
	for i := range docs {
		var response domain.Response
		if err := fromDocument(&docs[i], &response); err != nil {
			return nil, err
		}
		responses = append(responses, &response)
	}
	return responses, nil
}
