package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

type Config struct {
	ProjectID string
	// CredentialsFile is a service account key path. Ignored when
	// CredentialsJSON is set. Both empty means application default credentials.
	CredentialsFile string
	CredentialsJSON string
}

// Store is a Cloud Firestore backed DocumentStore. Identifiers are the
// auto-generated Firestore document ids.
type Store struct {
	client *firestore.Client
}

func Open(ctx context.Context, cfg Config) (*Store, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect firestore: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to add document: %w", err)
	}
	return ref.ID, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (*ports.Document, error) {
	if id == "" || strings.Contains(id, "/") {
		return nil, ports.ErrDocumentNotFound
	}

	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ports.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &ports.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Store) List(ctx context.Context, collection string) ([]ports.Document, error) {
	return collect(s.client.Collection(collection).Documents(ctx))
}

func (s *Store) Query(ctx context.Context, collection, field string, value any) ([]ports.Document, error) {
	return collect(s.client.Collection(collection).Where(field, "==", value).Documents(ctx))
}

func (s *Store) Close() error {
	return s.client.Close()
}

func collect(iter *firestore.DocumentIterator) ([]ports.Document, error) {
	defer iter.Stop()

	docs := []ports.Document{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate documents: %w", err)
		}
		docs = append(docs, ports.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}
