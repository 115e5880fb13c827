package cache

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// Mongo keeps entries in a collection with a TTL index on expires_at. Reads also filter on
// expires_at because the TTL monitor only sweeps about once a minute.
type Mongo struct {
	collection *mongo.Collection
	ttl        time.Duration
}

func NewMongo(db *mongo.Database, ttl time.Duration) *Mongo {
	return &Mongo{collection: db.Collection("catalog_cache"), ttl: ttl}
}

// EnsureIndexes creates the TTL index; safe to call on every start.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := m.collection.FindOne(ctx, bson.M{
		"_id":        key,
		"expires_at": bson.M{"$gt": time.Now()},
	}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	entry := mongoEntry{Key: key, Value: value, ExpiresAt: time.Now().Add(m.ttl)}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, entry, options.Replace().SetUpsert(true))
	return err
}
