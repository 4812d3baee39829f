package ports

import (
	"context"
	"errors"
)

const (
	PollsCollection     = "polls"
	ResponsesCollection = "responses"
)

var ErrDocumentNotFound = errors.New("document not found")

// Document is a schemaless record as returned by a DocumentStore. Data never
// carries the identifier; it lives in ID.
type Document struct {
	ID   string
	Data map[string]any
}

// DocumentStore is the persistence collaborator. Identifiers are generated by
// the store on Create.
type DocumentStore interface {
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
	// Get returns ErrDocumentNotFound when no document has the given id.
	Get(ctx context.Context, collection, id string) (*Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	// Query returns the documents whose top-level field equals value.
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)
	Close() error
}
