package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/system/auth"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"0123456789abcdef0123456789abcdef",
		"pasarhub-test-session",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

// captureHandler records the engine id seen by the downstream handler.
func captureHandler(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.EngineIDFrom(r)
		if !ok {
			http.Error(w, "no engine id", http.StatusInternalServerError)
			return
		}
		*got = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "", "", false, zap.NewNop()); err == nil {
		t.Fatal("empty session key should be rejected")
	}
}

func TestAttach_MintsEngineIDOnFirstContact(t *testing.T) {
	sm := newTestSessionManager(t)

	var id string
	rec := httptest.NewRecorder()
	sm.Attach(captureHandler(&id)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if id == "" {
		t.Fatal("no engine id injected")
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Fatal("first contact should set the session cookie")
	}
}

func TestAttach_SameCookieSameEngineID(t *testing.T) {
	sm := newTestSessionManager(t)

	var first string
	rec := httptest.NewRecorder()
	sm.Attach(captureHandler(&first)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var second string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	sm.Attach(captureHandler(&second)).ServeHTTP(rec2, req)

	if second != first {
		t.Errorf("engine id changed across requests: %q then %q", first, second)
	}
	if len(rec2.Result().Cookies()) != 0 {
		t.Error("returning browser should not get a new cookie")
	}
}

func TestAttach_DistinctBrowsersDistinctEngines(t *testing.T) {
	sm := newTestSessionManager(t)

	var a, b string
	sm.Attach(captureHandler(&a)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	sm.Attach(captureHandler(&b)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if a == b {
		t.Errorf("two cookie-less browsers share engine id %q", a)
	}
}

func TestAttach_TamperedCookieGetsFreshEngine(t *testing.T) {
	sm := newTestSessionManager(t)

	var id string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "pasarhub-test-session", Value: "garbage"})
	rec := httptest.NewRecorder()
	sm.Attach(captureHandler(&id)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if id == "" {
		t.Fatal("tampered cookie should still yield an engine id")
	}
}

func TestEngineIDFrom_Missing(t *testing.T) {
	if _, ok := auth.EngineIDFrom(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("bare request should carry no engine id")
	}
}

func TestWithTestEngineID(t *testing.T) {
	req := auth.WithTestEngineID(httptest.NewRequest(http.MethodGet, "/", nil), "engine-1")
	id, ok := auth.EngineIDFrom(req)
	if !ok || id != "engine-1" {
		t.Errorf("EngineIDFrom = %q, %v", id, ok)
	}
}
