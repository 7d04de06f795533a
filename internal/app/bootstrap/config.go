// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/harmonyhealth/harmony/internal/app/system/timeouts"
)

// devJWTSecret is the default signing secret. It exists so the service
// starts with zero configuration in development; ValidateConfig refuses it
// in prod.
const devJWTSecret = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for Harmony.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: HARMONY_MONGO_URI, HARMONY_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (blank runs memory-only)"},
	{Name: "mongo_database", Default: "harmony", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "jwt_secret", Default: devJWTSecret, Desc: "HMAC secret for signing bearer tokens (must be strong in production)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Store operation timeouts
	{Name: "store_timeout_ping", Default: "2s", Desc: "Backend liveness check timeout (e.g., 2s, 500ms)"},
	{Name: "store_timeout_short", Default: "5s", Desc: "Single-document read timeout"},
	{Name: "store_timeout_medium", Default: "10s", Desc: "List query and simple write timeout"},
	{Name: "store_timeout_long", Default: "30s", Desc: "Multi-record write timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific to
// this app. WAFFLE merges .env files, config files, environment variables
// (WAFFLE_* for core, HARMONY_* for app), and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HARMONY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		JWTSecret:        appValues.String("jwt_secret"),
		AuditLogAuth:     appValues.String("audit_log_auth"),

		StoreTimeoutPing:   appValues.Duration("store_timeout_ping", timeouts.DefaultPing),
		StoreTimeoutShort:  appValues.Duration("store_timeout_short", timeouts.DefaultShort),
		StoreTimeoutMedium: appValues.Duration("store_timeout_medium", timeouts.DefaultMedium),
		StoreTimeoutLong:   appValues.Duration("store_timeout_long", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A blank MongoURI is accepted (memory-only mode); a non-blank one must
// parse. The dev token secret is rejected outside dev so a deploy cannot
// silently sign tokens with a published key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	} else {
		logger.Warn("mongo_uri is blank; running with in-memory stores only")
	}

	if appCfg.JWTSecret == devJWTSecret && coreCfg.Env == "prod" {
		return fmt.Errorf("jwt_secret must be set in production")
	}
	if len(appCfg.JWTSecret) < 16 {
		logger.Warn("jwt_secret is short; use at least 16 characters")
	}

	return nil
}
