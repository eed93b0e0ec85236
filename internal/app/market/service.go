// Package market implements the marketplace domain operations: sign-in and
// registration, listing lifecycle, moderation, and profile management. Every
// operation reads a state snapshot, builds the replacement slices, and
// applies one patch, so each user action is a single state transition.
package market

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/seed"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Config carries the operational knobs for a service instance.
type Config struct {
	// AdminLoginID / AdminPassword are the maintenance backdoor credential
	// kept for parity with the deployed dataset. The login id is compared
	// case-insensitively.
	AdminLoginID  string
	AdminPassword string
}

// Loader fetches the persisted document at engine start.
type Loader interface {
	Load(ctx context.Context) (models.Document, error)
}

// Service is one session's engine: the state store, its notifier, and the
// domain operations over them.
type Service struct {
	Store *state.Store
	Notif *state.Notifier

	cfg Config
	log *zap.Logger

	// Listing ids are wall-clock derived; idMu/lastID keep them unique
	// when two creations land in the same millisecond.
	idMu   sync.Mutex
	lastID int64
	now    func() time.Time
}

// NewService wires a service around st.
func NewService(st *state.Store, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Store: st,
		Notif: state.NewNotifier(st),
		cfg:   cfg,
		log:   log,
		now:   time.Now,
	}
}

// Initialize loads the persisted document into the state. When the load
// fails the engine falls back to the seed dataset and enters degraded mode:
// the session stays usable, the user is told once, and later saves are
// attempted on a best-effort basis.
func (s *Service) Initialize(ctx context.Context, loader Loader) {
	s.Store.SetState(state.Patch{IsLoading: state.Set(true)})

	doc, err := loader.Load(ctx)
	if err != nil {
		s.log.Warn("initial data load failed, falling back to seed data", zap.Error(err))
		doc = seed.Document()
		s.Store.SetState(state.Patch{
			Users:     state.Set(doc.Users),
			Listings:  state.Set(doc.Listings),
			IsLoading: state.Set(false),
			Offline:   state.Set(true),
		})
		s.Notif.Error("Gagal memuat data. Menjalankan mode offline dengan data contoh.")
		return
	}

	doc.Normalize()
	s.Store.SetState(state.Patch{
		Users:     state.Set(doc.Users),
		Listings:  state.Set(doc.Listings),
		IsLoading: state.Set(false),
		Offline:   state.Set(false),
	})
}

// nextListingID returns a UnixMilli-derived id, bumped past the previous
// one on collision.
func (s *Service) nextListingID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// currentUser returns the signed-in user from a snapshot, or nil.
func currentUser(st models.AppState) *models.User {
	return st.CurrentUser
}

// isAdmin reports whether the snapshot's signed-in user is an admin.
func isAdmin(st models.AppState) bool {
	return st.CurrentUser != nil && st.CurrentUser.IsAdmin
}
