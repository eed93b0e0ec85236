// internal/app/features/listings/routes.go
package listings

import "github.com/go-chi/chi/v5"

// Routes returns the /listings subrouter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Post("/new", h.HandleNewOpen)
	r.Post("/new/cancel", h.HandleNewCancel)
	r.Post("/back", h.HandleBack)
	r.Post("/delete/cancel", h.HandleDeleteCancel)
	r.Post("/delete/confirm", h.HandleDeleteConfirm)

	r.Get("/{id}", h.ServeDetail)
	r.Post("/{id}/edit/open", h.HandleEditOpen)
	r.Post("/{id}/edit/cancel", h.HandleEditCancel)
	r.Post("/{id}/edit", h.HandleEdit)
	r.Post("/{id}/delete/open", h.HandleDeleteOpen)
	r.Post("/{id}/flag", h.HandleFlag)

	return r
}
