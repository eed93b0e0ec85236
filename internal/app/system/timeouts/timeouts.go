// Package timeouts centralizes the context deadlines wrapped around backend
// I/O. Every blocking call against MongoDB or the remote data endpoint picks
// its deadline here, so tuning one tunes it for every caller.
//
// Values start at the defaults and can be overridden once at startup via
// Configure; the timeout_* config keys feed it.
package timeouts

import (
	"sync"
	"time"
)

// Defaults, in effect until Configure overrides them.
const (
	DefaultPing    = 2 * time.Second
	DefaultConnect = 10 * time.Second
	DefaultLoad    = 15 * time.Second
	DefaultSave    = 15 * time.Second
)

var (
	mu      sync.RWMutex
	ping    = DefaultPing
	connect = DefaultConnect
	load    = DefaultLoad
	save    = DefaultSave
)

// Ping bounds the health endpoint's database ping.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Connect bounds the startup connectivity check against MongoDB.
func Connect() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return connect
}

// Load bounds the initial whole-document read when a session engine starts.
// It has to cover the remote endpoint's worst case, not just a local read.
func Load() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return load
}

// Save bounds one debounced whole-document write, local or remote.
func Save() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return save
}

// Config carries overrides for Configure. Zero values keep the current
// setting.
type Config struct {
	Ping    time.Duration
	Connect time.Duration
	Load    time.Duration
	Save    time.Duration
}

// Configure applies overrides. Call it during startup, before any backend is
// connected or handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Connect > 0 {
		connect = cfg.Connect
	}
	if cfg.Load > 0 {
		load = cfg.Load
	}
	if cfg.Save > 0 {
		save = cfg.Save
	}
}

// Reset restores the defaults. Tests use it to undo Configure.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	connect = DefaultConnect
	load = DefaultLoad
	save = DefaultSave
}
