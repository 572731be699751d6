package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epic-cs/epic-test-backend/internal/config"
)

// MongoStore backs the service in production.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger zerolog.Logger
}

func NewMongoStore(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Name),
		logger: logger,
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc Document) (string, error) {
	insert := make(bson.M, len(doc)+1)
	for k, v := range doc {
		insert[k] = v
	}
	insert["created_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).InsertOne(ctx, insert)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		docs = append(docs, fromBSON(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s cursor: %w", collection, err)
	}

	return docs, nil
}

func (s *MongoStore) UpdateDocuments(ctx context.Context, collection string, filter Filter, patch Document) (int64, error) {
	res, err := s.db.Collection(collection).UpdateMany(ctx, bson.M(filter), bson.M{"$set": bson.M(patch)})
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", collection, err)
	}
	return res.MatchedCount, nil
}

func (s *MongoStore) UpdateByID(ctx context.Context, collection string, id string, patch Document) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return 0, fmt.Errorf("failed to update %s by id: %w", collection, err)
	}
	return res.MatchedCount, nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// fromBSON normalizes driver-native values so callers only see plain
// strings, numbers and time.Time.
func fromBSON(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case primitive.ObjectID:
			doc[k] = val.Hex()
		case primitive.DateTime:
			doc[k] = val.Time().UTC()
		default:
			doc[k] = v
		}
	}
	return doc
}
