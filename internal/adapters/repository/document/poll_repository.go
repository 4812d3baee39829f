package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type pollRepository struct {
	store ports.DocumentStore
}

func NewPollRepository(store ports.DocumentStore) ports.PollRepository {
	return &pollRepository{
		store: store,
	}
}

// Save persists poll and sets its ID to the one assigned by the store.
func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	data, err := toData(poll)
	if err != nil {
		return err
	}

	id, err := r.store.Create(ctx, ports.PollsCollection, data)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	poll.ID = id

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id string) (*domain.Poll, error) {
	doc, err := r.store.Get(ctx, ports.PollsCollection, id)
	if err != nil {
		if errors.Is(err, ports.ErrDocumentNotFound) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	var poll domain.Poll
	if err := fromDocument(doc, &poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	docs, err := r.store.List(ctx, ports.PollsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}

	polls := make([]*domain.Poll, 0, len(docs))
	for i := range docs {
		var poll domain.Poll
		if err := fromDocument(&docs[i], &poll); err != nil {
			return nil, err
		}
		polls = append(polls, &poll)
	}
	return polls, nil
}
