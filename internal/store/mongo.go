package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/models"
)

// MongoStore keeps the catalog in a single collection. Record identity
// is positional, so each document carries its sequence number and a
// shared version stamp; Load sorts by sequence to reproduce the merged
// order exactly.
type MongoStore struct {
	collection *mongo.Collection
}

type catalogDoc struct {
	Seq     int            `bson:"seq"`
	Version int64          `bson:"version"`
	Product models.Product `bson:"product"`
}

// Connect dials Mongo with a bounded timeout and verifies the
// connection before handing the client back.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// Save replaces the catalog wholesale: the new snapshot is inserted
// under a fresh version stamp first, then older versions are removed,
// so concurrent readers never see a half-written catalog.
func (s *MongoStore) Save(ctx context.Context, catalog []models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	version := time.Now().UnixNano()
	docs := make([]interface{}, 0, len(catalog))
	for i, p := range catalog {
		docs = append(docs, catalogDoc{Seq: i, Version: version, Product: p})
	}
	if len(docs) > 0 {
		if _, err := s.collection.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
	}

	if _, err := s.collection.DeleteMany(ctx, bson.M{"version": bson.M{"$lt": version}}); err != nil {
		return fmt.Errorf("drop previous catalog: %w", err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	version, err := s.currentVersion(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{"version": version}, opts)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var catalog []models.Product
	for cursor.Next(ctx) {
		var doc catalogDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode catalog record: %w", err)
		}
		catalog = append(catalog, doc.Product)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s *MongoStore) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	version, err := s.currentVersion(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("mongo@%d", version), nil
}

func (s *MongoStore) currentVersion(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	var doc catalogDoc
	err := s.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, ErrCatalogNotFound
	}
	if err != nil {
		return 0, err
	}
	return doc.Version, nil
}
