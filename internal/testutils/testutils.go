// Package testutils provides the shared Mongo-or-skip setup used by the
// repository, usecase, and handler tests. Tests that need storage run
// against a real MongoDB instance and skip when none is reachable.
package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDBName is the database every storage-backed test uses. Dropped by the
// cleanup function after each test.
const TestDBName = "notemark_test"

// SetupTestDB connects to the test MongoDB instance, skipping the test when
// none is reachable. The returned cleanup drops the test database and
// disconnects the client.
func SetupTestDB(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("skipping: cannot connect to test MongoDB at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("skipping: test MongoDB at %s not reachable: %v", uri, err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Database(TestDBName).Drop(ctx); err != nil {
			t.Errorf("failed to drop test database: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Errorf("failed to disconnect test client: %v", err)
		}
	}

	return client, cleanup
}
