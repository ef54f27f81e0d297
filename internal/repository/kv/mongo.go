package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDocument - документ коллекции: _id = ключ
type mongoDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// mongoStore - MongoDB реализация Store
type mongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore подключается к MongoDB и возвращает хранилище
func NewMongoStore(ctx context.Context, uri, database, collection string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &mongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *mongoStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc mongoDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.Value, nil
}

func (s *mongoStore) Set(ctx context.Context, key string, value []byte) error {
	doc := mongoDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *mongoStore) Delete(ctx context.Context, key string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (s *mongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
