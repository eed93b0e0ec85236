package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	// DefaultSessionName is the cookie used to tie a browser to its engine.
	DefaultSessionName = "pasarhub-session"

	engineIDKey = "engine_id"
)

type ctxKey string

const engineCtxKey ctxKey = "engineID"

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager hands every browser a stable engine id via a session
// cookie. The id is the key into the engine registry; the session carries
// nothing else. Sign-in itself lives in the engine state, not the cookie,
// so logging out never rotates the id.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager.
//
// In production (secure=true), cookies are Secure + SameSite=None so they
// survive cross-site contexts over HTTPS. In local dev over
// http://localhost, use secure=false so cookies are accepted.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Attach ensures the request has an engine id, minting one on first
// contact, and injects it into the request context. The Set-Cookie header
// must go out before the handler writes the body, so the session is saved
// here rather than in the handlers.
func (m *SessionManager) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err != nil {
			// A tampered or stale cookie decodes to a fresh session.
			m.log.Debug("session decode failed; starting fresh", zap.Error(err))
		}

		id, ok := sess.Values[engineIDKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values[engineIDKey] = id
			if err := sess.Save(r, w); err != nil {
				m.log.Error("session save failed", zap.Error(err))
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), engineCtxKey, id)))
	})
}

// EngineIDFrom returns the engine id placed in the context by Attach.
func EngineIDFrom(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(engineCtxKey).(string)
	return id, ok && id != ""
}

// WithTestEngineID injects an engine id directly, for handler tests that
// bypass the middleware.
func WithTestEngineID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), engineCtxKey, id))
}
