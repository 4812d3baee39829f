package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/ports"
)

// Store maps each collection to a MongoDB collection of the same name.
// Identifiers are ObjectID hex strings.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to uri and pings the server before returning.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	doc := bson.M{}
	for k, v := range data {
		doc[k] = v
	}
	doc["_id"] = primitive.NewObjectID()

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (*ports.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// not an id this store could have generated
		return nil, ports.ErrDocumentNotFound
	}

	raw, err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ports.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return decodeDocument(raw)
}

func (s *Store) List(ctx context.Context, collection string) ([]ports.Document, error) {
	return s.find(ctx, collection, bson.M{})
}

func (s *Store) Query(ctx context.Context, collection, field string, value any) ([]ports.Document, error) {
	return s.find(ctx, collection, bson.M{field: value})
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) find(ctx context.Context, collection string, filter bson.M) ([]ports.Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []ports.Document{}
	for cursor.Next(ctx) {
		doc, err := decodeDocument(cursor.Current)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

// decodeDocument goes through relaxed extended JSON so that nested arrays and
// documents come out as plain []any and map[string]any.
func decodeDocument(raw bson.Raw) (*ports.Document, error) {
	oid, ok := raw.Lookup("_id").ObjectIDOK()
	if !ok {
		return nil, errors.New("document has no ObjectID _id")
	}

	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to convert document %s: %w", oid.Hex(), err)
	}

	data := make(map[string]any)
	if err := json.Unmarshal(ext, &data); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", oid.Hex(), err)
	}
	delete(data, "_id")

	return &ports.Document{ID: oid.Hex(), Data: data}, nil
}
