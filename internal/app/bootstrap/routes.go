// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	dataapifeature "github.com/pasarunsri/pasarhub/internal/app/features/dataapi"
	errorsfeature "github.com/pasarunsri/pasarhub/internal/app/features/errors"
	healthfeature "github.com/pasarunsri/pasarhub/internal/app/features/health"
	homefeature "github.com/pasarunsri/pasarhub/internal/app/features/home"
	listingsfeature "github.com/pasarunsri/pasarhub/internal/app/features/listings"
	loginfeature "github.com/pasarunsri/pasarhub/internal/app/features/login"
	profilefeature "github.com/pasarunsri/pasarhub/internal/app/features/profile"
	"github.com/pasarunsri/pasarhub/internal/app/system/auth"

	// Shared template partials register on import.
	_ "github.com/pasarunsri/pasarhub/internal/app/features/shared"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Pasar UNSRI initializes the template engine, attaches the session
// middleware that ties each browser to its engine, and mounts the feature
// routers: the render dispatcher at the root, the auth and listing flows,
// profiles, the data endpoint, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Registry, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Whole-document persistence endpoint. No session needed: the data
	// API is the storage contract, not a browser surface.
	dataHandler := dataapifeature.NewHandler(deps.DataStore, logger)
	r.Mount("/api/data", dataapifeature.Routes(dataHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Browser surface: every route below runs with an engine id.
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.Attach)

		homeHandler := homefeature.NewHandler(deps.Registry, errLog, logger)
		r.Mount("/", homefeature.Routes(homeHandler))

		loginHandler := loginfeature.NewHandler(deps.Registry, errLog, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))
		r.Mount("/register", loginfeature.RegisterRoutes(loginHandler))
		r.Mount("/logout", loginfeature.LogoutRoutes(loginHandler))

		listingsHandler := listingsfeature.NewHandler(deps.Registry, errLog, logger)
		r.Mount("/listings", listingsfeature.Routes(listingsHandler))

		profileHandler := profilefeature.NewHandler(deps.Registry, errLog, logger)
		r.Mount("/profile", profilefeature.Routes(profileHandler))
	})

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
