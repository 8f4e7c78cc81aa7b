package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createStore(t *testing.T, users []User, reminders []Reminder) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI is not set")
	}

	ctx := context.Background()

	database := fmt.Sprint("votereminder-", time.Now().Nanosecond())
	opts := options.Client().ApplyURI(uri)

	client, err := mongo.NewClient(opts)
	require.NoError(t, err)

	err = client.Connect(ctx)
	require.NoError(t, err)

	store := New(client, database)

	err = store.Bootstrap(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		err = store.client.Database(database).Drop(ctx)
		require.NoError(t, err)

		_ = client.Disconnect(ctx)
	})

	for _, u := range users {
		_, err = store.users.InsertOne(ctx, u)
		require.NoError(t, err)
	}

	for _, r := range reminders {
		_, err = store.reminders.InsertOne(ctx, r)
		require.NoError(t, err)
	}

	return &store
}
