package memory

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type collection struct {
	docs  map[string]map[string]any
	order []string
}

// Store keeps documents in process memory. Nothing survives a restart.
// List and Query return documents in insertion order.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
	newID       func() string
}

func NewStore() *Store {
	return &Store{
		collections: make(map[string]*collection),
		newID:       uuid.NewString,
	}
}

func (s *Store) Create(_ context.Context, name string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}

	id := s.newID()
	c.docs[id] = cloneMap(data)
	c.order = append(c.order, id)
	return id, nil
}

func (s *Store) Get(_ context.Context, name, id string) (*ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, ports.ErrDocumentNotFound
	}
	data, ok := c.docs[id]
	if !ok {
		return nil, ports.ErrDocumentNotFound
	}
	return &ports.Document{ID: id, Data: cloneMap(data)}, nil
}

func (s *Store) List(_ context.Context, name string) ([]ports.Document, error) {
	return s.filter(name, func(map[string]any) bool { return true }), nil
}

func (s *Store) Query(_ context.Context, name, field string, value any) ([]ports.Document, error) {
	return s.filter(name, func(data map[string]any) bool {
		v, ok := data[field]
		return ok && reflect.DeepEqual(v, value)
	}), nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) filter(name string, keep func(map[string]any) bool) []ports.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []ports.Document{}
	c, ok := s.collections[name]
	if !ok {
		return docs
	}
	for _, id := range c.order {
		data := c.docs[id]
		if keep(data) {
			docs = append(docs, ports.Document{ID: id, Data: cloneMap(data)})
		}
	}
	return docs
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
