package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per dataset key in a "datasets" collection.
// The dataset itself is stored as its JSON text so both backends serialize
// timestamps identically (ISO-8601) and can be swapped without migration of
// the repository layer. Whole-dataset replace semantics are preserved: a save
// is a single upsert of the full document.
type MongoStore struct {
	collection *mongo.Collection
}

type datasetDoc struct {
	Key  string `bson:"_id"`
	Data string `bson:"data"`
}

// NewMongoStore returns a store backed by the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection("datasets"),
	}
}

// Load fetches the dataset document for key. A missing document is not an
// error; out keeps its caller-supplied default.
func (s *MongoStore) Load(ctx context.Context, key string, out any) error {
	var doc datasetDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to fetch dataset document")
		return fmt.Errorf("failed to load dataset %q: %v", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Data), out); err != nil {
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to decode dataset document")
		return fmt.Errorf("failed to decode dataset %q: %v", key, err)
	}
	return nil
}

// Save upserts the full dataset document for key.
func (s *MongoStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode dataset %q: %v", key, err)
	}

	doc := datasetDoc{Key: key, Data: string(data)}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		logger.Log.WithError(err).WithField("dataset", key).Error("Failed to upsert dataset document")
		return fmt.Errorf("failed to save dataset %q: %v", key, err)
	}
	return nil
}
