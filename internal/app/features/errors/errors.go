// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// Handler is the errors feature handler. No state needed; it just renders
// templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Halaman tidak ditemukan",
		Message: "Halaman yang Anda cari tidak ada atau sudah dipindahkan.",
		BackURL: "/",
	})
}

// RenderServerError renders a friendly "something broke" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Terjadi kesalahan pada server. Silakan coba lagi."
	}
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Terjadi kesalahan",
		Message: msg,
		BackURL: backURL,
	})
}
