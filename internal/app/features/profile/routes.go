// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns the /profile subrouter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeOwn)
	r.Get("/view", h.ServeByName)

	r.Post("/edit/start", h.HandleEditStart)
	r.Post("/edit/cancel", h.HandleEditCancel)
	r.Post("/edit", h.HandleEdit)

	r.Post("/verify/open", h.HandleVerifyOpen)
	r.Post("/verify/close", h.HandleVerifyClose)
	r.Post("/verify", h.HandleVerify)

	return r
}
