// internal/app/system/workers/enginecleanup.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/market"
)

// EngineCleanup is a background worker that evicts idle browser engines
// from the registry. Eviction flushes any pending save first, so an engine
// never leaves with unsaved state.
type EngineCleanup struct {
	registry      *market.Registry
	log           *zap.Logger
	interval      time.Duration
	idleThreshold time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
}

// NewEngineCleanup creates a new engine cleanup worker.
//
// Parameters:
//   - registry: the engine registry
//   - logger: zap logger for logging
//   - interval: how often to run cleanup (e.g., 1 minute)
//   - idleThreshold: how long an engine must sit untouched before eviction (e.g., 30 minutes)
func NewEngineCleanup(registry *market.Registry, logger *zap.Logger, interval, idleThreshold time.Duration) *EngineCleanup {
	return &EngineCleanup{
		registry:      registry,
		log:           logger,
		interval:      interval,
		idleThreshold: idleThreshold,
		stopCh:        make(chan struct{}),
	}
}

// Start begins the background cleanup loop.
func (w *EngineCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("engine cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_threshold", w.idleThreshold))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *EngineCleanup) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("engine cleanup worker stopped")
}

func (w *EngineCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *EngineCleanup) cleanup() {
	count := w.registry.PruneIdle(w.idleThreshold)
	if count > 0 {
		w.log.Info("evicted idle engines",
			zap.Int("count", count),
			zap.Int("remaining", w.registry.Len()))
	}
}
