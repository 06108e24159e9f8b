// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminusersfeature "github.com/babyfiction/storehub/internal/app/features/adminusers"
	analyticsfeature "github.com/babyfiction/storehub/internal/app/features/analytics"
	healthfeature "github.com/babyfiction/storehub/internal/app/features/health"
	eventstore "github.com/babyfiction/storehub/internal/app/store/events"
	userstore "github.com/babyfiction/storehub/internal/app/store/users"
	"github.com/babyfiction/storehub/internal/app/system/auth"
	"github.com/babyfiction/storehub/internal/app/system/httperr"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, the
// shared error responder, the stores, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode; dev mode also turns on
	// verbose error bodies.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	errs := httperr.NewResponder(logger, !secure)

	users := userstore.New(deps.MongoDatabase)
	events := eventstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Admin user management (list, status toggle)
	adminUsersHandler := adminusersfeature.NewHandler(users, errs, logger)
	r.Mount("/admin/users", adminusersfeature.Routes(adminUsersHandler, sessionMgr))

	// Analytics: admin dashboard aggregation plus event ingest/summaries
	analyticsHandler := analyticsfeature.NewHandler(users, events, deps.Cache, appCfg.SummaryCacheTTL, errs, logger)
	r.Mount("/admin/analytics", analyticsfeature.AdminRoutes(analyticsHandler, sessionMgr))
	r.Mount("/analytics", analyticsfeature.Routes(analyticsHandler, sessionMgr))

	return r, nil
}
