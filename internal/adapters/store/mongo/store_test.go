package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDecodeDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "poll_id", Value: "p1"},
		{Key: "responses", Value: bson.D{{Key: "0", Value: "5"}}},
		{Key: "tags", Value: bson.A{"a", "b"}},
		{Key: "active", Value: true},
	})
	require.NoError(t, err)

	doc, err := decodeDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, oid.Hex(), doc.ID)
	assert.NotContains(t, doc.Data, "_id")
	assert.Equal(t, "p1", doc.Data["poll_id"])
	assert.Equal(t, map[string]any{"0": "5"}, doc.Data["responses"])
	assert.Equal(t, []any{"a", "b"}, doc.Data["tags"])
	assert.Equal(t, true, doc.Data["active"])
}

func TestDecodeDocumentWithoutObjectID(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "_id", Value: "plain"}})
	require.NoError(t, err)

	_, err = decodeDocument(raw)
	assert.Error(t, err)
}
