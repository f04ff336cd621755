package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDatabase connects to MongoDB, verifies the connection with a ping
// and returns a handle to the named database.
func NewMongoDatabase(ctx context.Context, uri, databaseName string) (*mongo.Database, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI cannot be empty")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Info("connected to MongoDB database", slog.String("database", databaseName))
	return client.Database(databaseName), nil
}

// CloseMongoDatabase disconnects the underlying client.
func CloseMongoDatabase(db *mongo.Database) {
	if db == nil {
		return
	}
	if err := db.Client().Disconnect(context.Background()); err != nil {
		slog.Error("failed to disconnect MongoDB client", slog.String("error", err.Error()))
		return
	}
	slog.Info("MongoDB connection closed")
}
