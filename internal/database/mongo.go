// Package database owns the process-scoped MongoDB handle: connect, index
// bootstrap, disconnect.
package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emeka-dev/catalog-backend/internal/config"
)

// Connect establishes and verifies the MongoDB connection.
func Connect(ctx context.Context, cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	return client, client.Database(cfg.MongoDB), nil
}

// Disconnect tears the connection down, logging rather than failing since
// it only runs on shutdown.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to disconnect from MongoDB")
	}
}

// EnsureIndexes creates the secondary indexes both collections rely on.
// Unique indexes are the second line of defense behind the handlers'
// explicit pre-checks; index names are what the duplicate-key translator in
// apperrors keys on to identify the offending field.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	catIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("idx_slug").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_name").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "parentCategory", Value: 1}},
			Options: options.Index().SetName("idx_parentCategory"),
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().SetName("idx_category_text"),
		},
	}
	if _, err := db.Collection("categories").Indexes().CreateMany(ctx, catIndexes); err != nil {
		return err
	}

	prodIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("idx_slug").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "price", Value: 1},
			},
			Options: options.Index().SetName("idx_category_price"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_createdAt"),
		},
		{
			// Multikey over the embedded variants; sparse so products
			// without variants don't collide on the missing key.
			Keys:    bson.D{{Key: "variants.sku", Value: 1}},
			Options: options.Index().SetName("idx_sku").SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().SetName("idx_product_text"),
		},
	}
	if _, err := db.Collection("products").Indexes().CreateMany(ctx, prodIndexes); err != nil {
		return err
	}

	return nil
}
