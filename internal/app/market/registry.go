// internal/app/market/registry.go
package market

import (
	"sync"
	"time"
)

// Registry maps session ids to their engines. Each browser session gets its
// own Service (and so its own state store); the registry creates one on
// first use and hands the same instance back for the session's lifetime.
type Registry struct {
	mu      sync.Mutex
	engines map[string]*registryEntry
	factory func() *Service
}

type registryEntry struct {
	once     sync.Once
	svc      *Service
	lastSeen time.Time
}

// NewRegistry creates a registry. factory builds and initializes a fresh
// engine; it is called at most once per session id.
func NewRegistry(factory func() *Service) *Registry {
	return &Registry{
		engines: make(map[string]*registryEntry),
		factory: factory,
	}
}

// Get returns the engine for a session id, creating it on first use. The
// factory runs outside the registry lock so a slow initial data load does
// not stall other sessions.
func (r *Registry) Get(id string) *Service {
	r.mu.Lock()
	e, ok := r.engines[id]
	if !ok {
		e = &registryEntry{}
		r.engines[id] = e
	}
	e.lastSeen = time.Now()
	r.mu.Unlock()

	e.once.Do(func() { e.svc = r.factory() })
	return e.svc
}

// Len reports how many engines are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}

// PruneIdle evicts engines untouched for longer than idle, flushing any
// pending save first, and returns how many were evicted.
func (r *Registry) PruneIdle(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	r.mu.Lock()
	var victims []*registryEntry
	for id, e := range r.engines {
		if e.lastSeen.Before(cutoff) {
			victims = append(victims, e)
			delete(r.engines, id)
		}
	}
	r.mu.Unlock()

	for _, e := range victims {
		if e.svc != nil {
			e.svc.Store.Flush()
		}
	}
	return len(victims)
}

// FlushAll runs pending saves on every live engine. Shutdown calls it.
func (r *Registry) FlushAll() {
	r.mu.Lock()
	var all []*registryEntry
	for _, e := range r.engines {
		all = append(all, e)
	}
	r.mu.Unlock()

	for _, e := range all {
		if e.svc != nil {
			e.svc.Store.Flush()
		}
	}
}
