// Package database owns the MongoDB connection for the storefront.
//
// Connect is called exactly once at application startup; the returned Store
// is injected into every repository. The driver handles its own pooling and
// thread-safety, so the handle is shared freely across requests.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/foodmart/config"
)

// Collection names used by the storefront.
const (
	ColProducts   = "products"
	ColCategories = "categories"
	ColUsers      = "users"
	ColOrders     = "orders"
	ColLogs       = "logs"
)

// Store holds the connected database and its collections.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Products   *mongo.Collection
	Categories *mongo.Collection
	Users      *mongo.Collection
	Orders     *mongo.Collection
}

// Connect opens the MongoDB connection, verifies it with a ping, and makes
// sure the storefront collections exist. Connection failures propagate to
// the caller; there is no retry or backoff.
func Connect(ctx context.Context) (*Store, error) {
	opts := options.Client().ApplyURI(config.MongoURL()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	db := client.Database(config.DBName())

	for _, name := range []string{ColProducts, ColCategories, ColUsers, ColOrders} {
		// Mongo creates collections lazily anyway; an "already exists"
		// error here is expected and ignored.
		_ = db.CreateCollection(ctx, name)
	}

	return &Store{
		client:     client,
		db:         db,
		Products:   db.Collection(ColProducts),
		Categories: db.Collection(ColCategories),
		Users:      db.Collection(ColUsers),
		Orders:     db.Collection(ColOrders),
	}, nil
}

// Logs returns the application log collection used by the Mongo slog sink.
func (s *Store) Logs() *mongo.Collection {
	return s.db.Collection(ColLogs)
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
