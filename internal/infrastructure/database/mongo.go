package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"journal-backend/internal/config"
)

// MongoDB wraps the driver client and the application database handle.
// Repositories receive collections from here, never the raw client.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.MongoConfig
}

func NewMongoDB(cfg *config.MongoConfig) *MongoDB {
	return &MongoDB{Config: cfg}
}

// Connect establishes the connection and verifies it with a ping.
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Println("[MONGO] Connecting...")

	ctx, cancel := context.WithTimeout(ctx, db.Config.Timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(db.Config.URI).
		SetConnectTimeout(db.Config.Timeout).
		SetServerSelectionTimeout(db.Config.Timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("mongo connect failed: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}

	db.Client = client
	db.Database = client.Database(db.Config.Database)

	log.Println("[MONGO] Connected successfully")
	return nil
}

// HealthCheck pings the primary with a short timeout.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}

	return nil
}

// Collection returns a handle in the application database.
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client != nil {
		return db.Client.Disconnect(ctx)
	}
	return nil
}

// EnsureIndexes creates the uniqueness constraints the domain relies on:
// reviewer email, auth email and auth phone.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("reviewers").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    map[string]interface{}{"email": 1},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("create reviewer email index: %w", err)
	}

	for _, field := range []string{"email", "phoneNumber", "username"} {
		_, err := db.Collection("auths").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    map[string]interface{}{field: 1},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("create auth %s index: %w", field, err)
		}
	}

	return nil
}
