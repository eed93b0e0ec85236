// internal/app/store/marketdata/marketdatastore.go
package marketdatastore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pasarunsri/pasarhub/internal/app/system/seed"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// DataKey identifies the single marketplace document. The key is part of
// the persistence contract; changing it orphans the stored dataset.
const DataKey = "pasardb_v1"

// Store holds the whole marketplace dataset as one document in the
// market_data collection, addressed by DataKey. Reads and writes always
// move the entire document; concurrent writers are last-write-wins.
type Store struct {
	c *mongo.Collection
}

// New creates a market data store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("market_data")}
}

type record struct {
	Key       string           `bson:"key"`
	Users     []models.User    `bson:"users"`
	Listings  []models.Listing `bson:"listings"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// Get returns the stored document. An empty store is seeded with the
// deterministic starter dataset first, so a fresh deployment serves data
// immediately.
func (s *Store) Get(ctx context.Context) (models.Document, error) {
	var rec record
	err := s.c.FindOne(ctx, bson.M{"key": DataKey}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		doc := seed.Document()
		if err := s.Put(ctx, doc); err != nil {
			return models.Document{}, err
		}
		return doc, nil
	}
	if err != nil {
		return models.Document{}, err
	}

	doc := models.Document{Users: rec.Users, Listings: rec.Listings}
	doc.Normalize()
	return doc, nil
}

// Put overwrites the stored document. Uses upsert so it works whether the
// document exists or not.
func (s *Store) Put(ctx context.Context, doc models.Document) error {
	update := bson.M{
		"$set": bson.M{
			"key":        DataKey,
			"users":      doc.Users,
			"listings":   doc.Listings,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"key": DataKey}, update, opts)
	return err
}

// Exists reports whether the document has been written yet.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"key": DataKey})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
