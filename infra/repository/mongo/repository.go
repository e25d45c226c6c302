// Package mongo persists account snapshots in a MongoDB collection, one
// document per account.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amirasaad/bank/config"
	"github.com/amirasaad/bank/pkg/domain/account"
)

// Repository implements repository.AccountsRepository on top of a MongoDB
// collection. Saving replaces the stored snapshot wholesale.
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
	logger     *slog.Logger
}

// New connects to MongoDB and returns a repository bound to the configured
// collection.
func New(ctx context.Context, cfg config.Mongo, logger *slog.Logger) (*Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return &Repository{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		timeout:    cfg.Timeout,
		logger:     logger,
	}, nil
}

// SaveAll clears the collection and upserts one document per snapshot, keyed
// by identifier.
func (r *Repository) SaveAll(ctx context.Context, snapshots []account.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear accounts collection: %w", err)
	}
	for _, snap := range snapshots {
		filter := bson.M{"identifier": snap.Identifier}
		update := bson.M{"$set": snap}
		if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("failed to save account %s: %w", snap.Identifier, err)
		}
	}
	r.logger.Info("Accounts saved to mongodb", "count", len(snapshots))
	return nil
}

// LoadAll returns every stored snapshot.
func (r *Repository) LoadAll(ctx context.Context) ([]account.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	defer cursor.Close(ctx) //nolint: errcheck

	var snapshots []account.Snapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	r.logger.Info("Accounts loaded from mongodb", "count", len(snapshots))
	return snapshots, nil
}

// Close tears down the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.Disconnect(ctx)
}
