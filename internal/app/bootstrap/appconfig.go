// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging, and timeouts. AppConfig is everything specific to Pasar UNSRI.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: pasarhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// DataAPIURL points engines at a remote data endpoint instead of the
	// local document store. Blank means persist directly to MongoDB.
	DataAPIURL string

	// Admin bypass credential, kept for parity with the deployed dataset.
	AdminLoginID  string
	AdminPassword string

	// SaveDelay is the debounce window between a state change and the
	// persistence write.
	SaveDelay time.Duration

	// Engine lifecycle
	EngineIdle            time.Duration // evict engines untouched this long
	EngineCleanupInterval time.Duration // how often the cleanup worker runs
}
