package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "storage"

type entry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per key.
type MongoStore struct {
	Collection *mongo.Collection
}

// ConnectMongo dials uri and returns a store on the storage collection of
// database, along with the client so the caller can disconnect it.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("storage: connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("storage: ping mongo: %w", err)
	}

	return &MongoStore{Collection: client.Database(database).Collection(mongoCollection)}, client, nil
}

func (m *MongoStore) Get(ctx context.Context, key string) (string, error) {
	var e entry
	err := m.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: get %s: %w", key, err)
	}
	return e.Value, nil
}

func (m *MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := m.Collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

func (m *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := m.Collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
