package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userCollection     = "users"
	reminderCollection = "reminders"
)

// Store represents the store.
type Store struct {
	client    *mongo.Client
	users     *mongo.Collection
	reminders *mongo.Collection
}

// New creates a new Store.
func New(client *mongo.Client, databaseName string) Store {
	return Store{
		client:    client,
		users:     client.Database(databaseName).Collection(userCollection),
		reminders: client.Database(databaseName).Collection(reminderCollection),
	}
}

// Bootstrap boostraps the database.
func (s *Store) Bootstrap(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "activity", Value: 1},
			},
			Options: options.Index().
				SetName("_uniq_user_activity").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "endTime", Value: 1},
			},
			Options: options.Index().
				SetName("_end_time"),
		},
	}

	if _, err := s.reminders.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create reminder indexes: %w", err)
	}

	return nil
}
