// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to Harmony.
//
// MongoURI may be blank: Harmony then runs entirely on its in-memory
// stores, which is the intended mode for local frontend development.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string; blank runs memory-only
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration
	JWTSecret string // HMAC secret for signing bearer tokens (must be strong in production)

	// Audit logging settings
	AuditLogAuth string // Auth event logging: "all" (db+log), "db", "log", or "off"

	// Store operation timeouts (see internal/app/system/timeouts)
	StoreTimeoutPing   time.Duration // backend liveness checks
	StoreTimeoutShort  time.Duration // single-document reads
	StoreTimeoutMedium time.Duration // list queries and simple writes
	StoreTimeoutLong   time.Duration // multi-record write sequences
}
