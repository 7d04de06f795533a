// internal/testutil/db.go

// Package testutil provides shared helpers for integration and handler
// tests: a per-test MongoDB database, request identity injection, and
// data fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// envTestMongoURI overrides the MongoDB instance used by integration
// tests. The default targets a local instance.
const envTestMongoURI = "HARMONY_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB instance and returns a fresh,
// uniquely named database. The test is skipped when no instance is
// reachable, so the suite passes on machines without MongoDB; the
// in-memory backends cover the same contracts there. Cleanup drops the
// database and disconnects.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(envTestMongoURI)
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongo not available at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo not reachable at %s: %v", uri, err)
	}

	name := fmt.Sprintf("harmony_test_%d", time.Now().UnixNano())
	db := client.Database(name)

	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(cleanupCtx); err != nil {
			t.Logf("drop test database %s: %v", name, err)
		}
		_ = client.Disconnect(cleanupCtx)
	})

	return db
}

// TestContext returns a context with a deadline generous enough for any
// single test against a local database.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
