// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// Routes returns the /login subrouter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	r.Post("/demo", h.HandleDemoLogin)
	return r
}

// RegisterRoutes returns the /register subrouter.
func RegisterRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegister)
	r.Post("/", h.HandleRegisterPost)
	return r
}

// LogoutRoutes returns the /logout subrouter for the confirmation flow.
func LogoutRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/open", h.HandleLogoutOpen)
	r.Post("/cancel", h.HandleLogoutCancel)
	r.Post("/confirm", h.HandleLogoutConfirm)
	return r
}
