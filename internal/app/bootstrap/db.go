// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/harmonyhealth/harmony/internal/app/system/indexes"
	"github.com/harmonyhealth/harmony/internal/app/system/timeouts"
)

// ConnectDB establishes the MongoDB connection, or none at all.
//
// A blank mongo_uri means memory-only mode: the deps come back empty and
// every store runs on its in-memory backend. A URI that connects but does
// not answer a ping is kept anyway: the stores re-check reachability on
// every operation, so the database joining later is picked up without a
// restart.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	// Timeouts must be in place before the first backend call.
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.StoreTimeoutPing,
		Short:  appCfg.StoreTimeoutShort,
		Medium: appCfg.StoreTimeoutMedium,
		Long:   appCfg.StoreTimeoutLong,
	})

	if appCfg.MongoURI == "" {
		logger.Info("no mongo_uri configured; using in-memory stores")
		return DBDeps{}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, err
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("MongoDB unreachable at startup; stores will fall back to memory until it recovers",
			zap.Error(err))
	} else {
		logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	}

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema reconciles the indexes the stores rely on. Failures are
// logged, not fatal: the database may simply be down, and the service
// still works on its memory backends.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	schemaCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	if err := indexes.EnsureAll(schemaCtx, deps.MongoDatabase, logger); err != nil {
		logger.Warn("index reconciliation failed; continuing", zap.Error(err))
	}
	return nil
}
