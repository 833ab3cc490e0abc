// Package database owns the MongoDB connection shared by the repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/foodcourt/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the MongoDB client, verifies the connection with a ping and
// ensures the indexes the application relies on.
// Returns an error instead of calling log.Fatal so the caller can shut down
// gracefully.
func Connect(ctx context.Context) error {
	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDatabase())

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	return nil
}

// ensureIndexes creates the indexes registration and order listing depend on.
func ensureIndexes(ctx context.Context) error {
	users := db.Collection("users")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("database: users email index: %w", err)
	}

	orders := db.Collection("orders")
	_, err = orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("database: orders userId index: %w", err)
	}

	return nil
}

// DB returns the application database handle. Connect must have succeeded.
func DB() *mongo.Database {
	return db
}

// Collection is a shorthand for DB().Collection(name).
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// Disconnect closes the MongoDB client.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
