// internal/app/features/dataapi/routes.go
package dataapi

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the data endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Put("/", h.ServePut)
	r.MethodNotAllowed(h.ServeMethodNotAllowed) // this will be mounted under /api/data
	return r
}
