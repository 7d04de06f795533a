// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
	"github.com/harmonyhealth/harmony/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Harmony seeds the organization picker here so the first signup page
// render already has choices. Seeding is best-effort: the stores also seed
// lazily on first read, so a failure here only costs a warning.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	seedCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	orgs := orgstore.NewMongo(deps.MongoDatabase, logger)
	if err := orgs.SeedDefaultsIfEmpty(seedCtx); err != nil {
		logger.Warn("organization seeding failed; will retry on first read", zap.Error(err))
	}
	return nil
}
