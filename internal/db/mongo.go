package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scholarledger/internal/ledger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "ledger_records"

type mongoRecord struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type MongoDB struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoDB connects to uri and stores ledger records in database.
func NewMongoDB(ctx context.Context, uri, database string) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoDB{
		client: client,
		coll:   client.Database(database).Collection(mongoCollection),
	}, nil
}

// NewMongoCollection wraps an existing collection.
func NewMongoCollection(coll *mongo.Collection) *MongoDB {
	return &MongoDB{coll: coll}
}

func (m *MongoDB) Get(ctx context.Context, key string) ([]byte, error) {
	var rec mongoRecord
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrKeyNotFound
		}
		return nil, fmt.Errorf("find record %q: %w", key, err)
	}
	return []byte(rec.Value), nil
}

func (m *MongoDB) Put(ctx context.Context, key string, value []byte) error {
	update := bson.M{"$set": bson.M{
		"value":     string(value),
		"updatedAt": time.Now().UTC(),
	}}

	_, err := m.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert record %q: %w", key, err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
