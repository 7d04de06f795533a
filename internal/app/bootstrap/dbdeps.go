// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Both fields are nil when Harmony runs memory-only. A non-nil client
// with an unreachable server is also valid: the stores re-check
// reachability per operation and fall back to memory.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
