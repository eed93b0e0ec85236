// Package state holds one session's application state: a single mutable
// AppState behind a store that applies partial patches, re-renders through a
// single subscriber, and mirrors data changes out through a debounced
// whole-document save.
package state

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// DefaultSaveDelay is the debounce window between the last data-bearing
// patch and the save it triggers.
const DefaultSaveDelay = time.Second

// SaveFunc persists a document snapshot. It runs on a timer goroutine and
// owns its own error handling; the store fires and forgets.
type SaveFunc func(models.Document)

// Store owns the mutable AppState. All reads go through State() snapshots
// and all writes through SetState, so the state itself has exactly one
// writer at a time.
type Store struct {
	mu        sync.Mutex
	state     models.AppState
	render    func()
	save      SaveFunc
	saveDelay time.Duration
	pending   *time.Timer
	log       *zap.Logger
}

// New creates a store in the initial pre-login state. save may be nil
// (nothing is persisted); saveDelay <= 0 uses DefaultSaveDelay.
func New(save SaveFunc, saveDelay time.Duration, log *zap.Logger) *Store {
	if saveDelay <= 0 {
		saveDelay = DefaultSaveDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		state:     initialState(),
		save:      save,
		saveDelay: saveDelay,
		log:       log,
	}
}

func initialState() models.AppState {
	return models.AppState{
		IsLoading:        true,
		CurrentView:      models.ViewLogin,
		NotificationMode: models.NotificationsOn,
	}
}

// Subscribe registers the render callback invoked after every applied
// patch. There is exactly one subscriber: registering again replaces the
// previous callback. Panics in the callback propagate to the caller of
// SetState.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.render = fn
	s.mu.Unlock()
}

// State returns a snapshot of the current state. Slice and pointer fields
// are shared with the store; callers treat them as read-only and route all
// changes through SetState.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState applies p to the state, schedules a save when the patch touched
// users or listings, then invokes the subscriber. Scheduling a save while
// one is pending cancels the pending one and restarts the delay, so a burst
// of writes collapses into one save of the final merged state.
func (s *Store) SetState(p Patch) {
	s.mu.Lock()
	p.apply(&s.state)
	if p.touchesDocument() {
		s.scheduleSaveLocked()
	}
	render := s.render
	s.mu.Unlock()

	if render != nil {
		render()
	}
}

// Update derives a patch from the current state and applies it without
// releasing the lock in between. Read-modify-write sequences such as the
// toast queue go through here, so a concurrent writer cannot slip between
// the read and the write and get lost.
func (s *Store) Update(fn func(models.AppState) Patch) {
	s.mu.Lock()
	p := fn(s.state)
	p.apply(&s.state)
	if p.touchesDocument() {
		s.scheduleSaveLocked()
	}
	render := s.render
	s.mu.Unlock()

	if render != nil {
		render()
	}
}

func (s *Store) scheduleSaveLocked() {
	if s.save == nil {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(s.saveDelay, s.firePendingSave)
}

// firePendingSave snapshots the document at fire time, so the write always
// carries the latest merged state even when patches landed after the save
// was scheduled.
func (s *Store) firePendingSave() {
	s.mu.Lock()
	s.pending = nil
	doc := models.Document{Users: s.state.Users, Listings: s.state.Listings}.Clone()
	save := s.save
	s.mu.Unlock()

	save(doc)
}

// Flush runs any pending save immediately instead of waiting out the
// debounce window. Shutdown calls it so the last edits are not lost.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.pending == nil || !s.pending.Stop() {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	doc := models.Document{Users: s.state.Users, Listings: s.state.Listings}.Clone()
	save := s.save
	s.mu.Unlock()

	save(doc)
}
