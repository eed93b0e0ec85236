// internal/app/features/home/routes.go
package home

import "github.com/go-chi/chi/v5"

// Routes returns the root router: the render dispatcher plus the browse
// actions.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)

	r.Post("/home", h.HandleHome)
	r.Post("/search", h.HandleSearch)
	r.Post("/faculty", h.HandleFaculty)
	r.Post("/faculty/clear", h.HandleFacultyClear)

	r.Post("/filter/open", h.HandleFilterOpen)
	r.Post("/filter/cancel", h.HandleFilterCancel)
	r.Post("/filter/apply", h.HandleFilterApply)

	r.Post("/notifications/toggle", h.HandleNotifToggle)
	r.Post("/notifications/mode", h.HandleNotifMode)
	r.Post("/menu/profile", h.HandleProfileMenu)

	return r
}
