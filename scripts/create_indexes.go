package main

import (
	"context"
	"log"
	"time"

	"github.com/emeka-dev/catalog-backend/internal/config"
	"github.com/emeka-dev/catalog-backend/internal/database"
)

// Run this script once to create database indexes against an existing
// deployment (the server also ensures them at startup).
// Usage: go run scripts/create_indexes.go
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := config.Load()

	log.Printf("Connecting to %s...", cfg.MongoURI)
	client, db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Disconnect(client)
	log.Println("Connected")

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("All indexes created")
	log.Println("Run 'db.products.getIndexes()' and 'db.categories.getIndexes()' in the MongoDB shell to verify")
}
