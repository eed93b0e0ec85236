// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/system/timeouts"
)

// appConfigKeys defines the configuration keys for Pasar UNSRI.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: PASARHUB_MONGO_URI, PASARHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "pasar_unsri", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "pasarhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Persistence
	{Name: "data_api_url", Default: "", Desc: "Remote data endpoint (blank = persist directly to MongoDB)"},
	{Name: "save_delay", Default: "1s", Desc: "Debounce window before persisting state changes"},

	// Admin bypass credential (parity with the deployed dataset)
	{Name: "admin_login_id", Default: "super diddy", Desc: "Admin bypass login id (compared case-insensitively)"},
	{Name: "admin_password", Default: "123", Desc: "Admin bypass password"},

	// Engine lifecycle
	{Name: "engine_idle", Default: "30m", Desc: "Evict session engines untouched this long"},
	{Name: "engine_cleanup_interval", Default: "1m", Desc: "How often the engine cleanup worker runs"},

	// Backend I/O deadlines (blank = package defaults)
	{Name: "timeout_ping", Default: "", Desc: "Deadline for the health endpoint's database ping"},
	{Name: "timeout_connect", Default: "", Desc: "Deadline for the startup MongoDB connectivity check"},
	{Name: "timeout_load", Default: "", Desc: "Deadline for the initial document load per session engine"},
	{Name: "timeout_save", Default: "", Desc: "Deadline for one debounced document save"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PASARHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PASARHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		DataAPIURL: appValues.String("data_api_url"),
		SaveDelay:  appValues.Duration("save_delay", time.Second),

		AdminLoginID:  appValues.String("admin_login_id"),
		AdminPassword: appValues.String("admin_password"),

		EngineIdle:            appValues.Duration("engine_idle", 30*time.Minute),
		EngineCleanupInterval: appValues.Duration("engine_cleanup_interval", time.Minute),
	}

	// Unset keys come through as zero and keep the package defaults.
	timeouts.Configure(timeouts.Config{
		Ping:    appValues.Duration("timeout_ping", 0),
		Connect: appValues.Duration("timeout_connect", 0),
		Load:    appValues.Duration("timeout_load", 0),
		Save:    appValues.Duration("timeout_save", 0),
	})

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Pasar UNSRI validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SaveDelay <= 0 {
		return fmt.Errorf("save_delay must be positive, got %s", appCfg.SaveDelay)
	}
	if appCfg.EngineIdle <= 0 {
		return fmt.Errorf("engine_idle must be positive, got %s", appCfg.EngineIdle)
	}

	return nil
}
