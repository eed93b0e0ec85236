// internal/app/features/shared/engine.go
package shared

import (
	"net/http"

	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/system/auth"
)

// Engine resolves the request's session engine. The session middleware runs
// on every route, so a missing engine id means broken wiring, not a user
// error.
func Engine(w http.ResponseWriter, r *http.Request, reg *market.Registry) (*market.Service, bool) {
	id, ok := auth.EngineIDFrom(r)
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return reg.Get(id), true
}
