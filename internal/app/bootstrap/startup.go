// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. Pasar
// UNSRI seeds the document store on first deployment and starts the engine
// cleanup worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := seedIfEmpty(ctx, deps, logger); err != nil {
		return err
	}

	deps.Cleanup.Start()
	return nil
}

// seedIfEmpty writes the starter dataset on a fresh deployment so the first
// browser sees a populated marketplace. The store's Get seeds as a side
// effect; doing it here keeps first-request latency flat.
func seedIfEmpty(ctx context.Context, deps DBDeps, logger *zap.Logger) error {
	exists, err := deps.DataStore.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check data store: %w", err)
	}
	if exists {
		return nil
	}

	doc, err := deps.DataStore.Get(ctx)
	if err != nil {
		return fmt.Errorf("seed data store: %w", err)
	}
	logger.Info("seeded starter dataset",
		zap.Int("users", len(doc.Users)),
		zap.Int("listings", len(doc.Listings)))
	return nil
}
