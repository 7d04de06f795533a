// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authfeature "github.com/harmonyhealth/harmony/internal/app/features/auth"
	contentfeature "github.com/harmonyhealth/harmony/internal/app/features/content"
	healthfeature "github.com/harmonyhealth/harmony/internal/app/features/health"
	orgfeature "github.com/harmonyhealth/harmony/internal/app/features/organizations"
	"github.com/harmonyhealth/harmony/internal/app/store/audit"
	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
	userstore "github.com/harmonyhealth/harmony/internal/app/store/users"
	"github.com/harmonyhealth/harmony/internal/app/system/auditlog"
	"github.com/harmonyhealth/harmony/internal/app/system/auth"
	"github.com/harmonyhealth/harmony/internal/app/system/credentials"
	"github.com/harmonyhealth/harmony/internal/app/system/token"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Harmony wires the dual-backend stores,
// the token codec, the audit side-channel, and the credential service, then
// mounts the API feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Users always go through the selector: it picks MongoDB or memory per
	// operation based on reachability.
	users := userstore.NewSelector(deps.MongoClient, deps.MongoDatabase, logger)

	var orgs orgstore.Store
	if deps.MongoDatabase != nil {
		orgs = orgstore.NewMongo(deps.MongoDatabase, logger)
	} else {
		orgs = orgstore.NewMem()
	}

	var sink auditlog.Sink
	if deps.MongoDatabase != nil {
		sink = audit.New(deps.MongoDatabase)
	}
	auditLog := auditlog.New(sink, logger, auditlog.Mode(appCfg.AuditLogAuth))

	codec := token.New(appCfg.JWTSecret)
	svc := credentials.New(users, orgs, codec, auditLog, logger)
	sessionMgr := auth.NewManager(codec, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the bearer-token identity into context
	// so any handler can call auth.CurrentUser(r).
	r.Use(sessionMgr.LoadBearerUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	// Credential and session endpoints
	authHandler := authfeature.NewHandler(svc, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	// Organization picker for the signup page
	orgHandler := orgfeature.NewHandler(orgs, logger)
	r.Mount("/api/organizations", orgfeature.Routes(orgHandler))

	// Static marketing content
	contentHandler := contentfeature.NewHandler(logger)
	r.Mount("/api/features", contentfeature.Routes(contentHandler))

	return r, nil
}
