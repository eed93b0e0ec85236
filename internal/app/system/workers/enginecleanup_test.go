package workers_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/workers"
)

func newTestRegistry() *market.Registry {
	return market.NewRegistry(func() *market.Service {
		return market.NewService(state.New(nil, time.Hour, nil), market.Config{
			AdminLoginID:  "super diddy",
			AdminPassword: "123",
		}, nil)
	})
}

func TestEngineCleanup_EvictsIdleEngines(t *testing.T) {
	r := newTestRegistry()
	r.Get("sesi-1")
	r.Get("sesi-2")

	w := workers.NewEngineCleanup(r, zap.NewNop(), 10*time.Millisecond, 0)
	w.Start()
	defer w.Stop()

	deadline := time.After(2 * time.Second)
	for r.Len() > 0 {
		select {
		case <-deadline:
			t.Fatalf("engines not evicted, Len() = %d", r.Len())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestEngineCleanup_KeepsActiveEngines(t *testing.T) {
	r := newTestRegistry()
	r.Get("sesi-1")

	w := workers.NewEngineCleanup(r, zap.NewNop(), 10*time.Millisecond, time.Hour)
	w.Start()

	time.Sleep(50 * time.Millisecond)
	w.Stop()

	if r.Len() != 1 {
		t.Errorf("active engine evicted, Len() = %d", r.Len())
	}
}

func TestEngineCleanup_StopTerminates(t *testing.T) {
	w := workers.NewEngineCleanup(newTestRegistry(), zap.NewNop(), time.Millisecond, time.Hour)
	w.Start()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
