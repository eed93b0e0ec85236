// internal/app/features/listings/handler.go
package listings

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/pasarunsri/pasarhub/internal/app/features/errors"
	"github.com/pasarunsri/pasarhub/internal/app/features/shared"
	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/system/viewdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Handler serves the listing lifecycle: detail view, creation, editing,
// deletion, and moderation flags.
type Handler struct {
	Registry *market.Registry
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(registry *market.Registry, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Registry: registry,
		ErrLog:   errLog,
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Detail view                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type detailPageData struct {
	viewdata.BaseVM
	Listing viewdata.ListingVM

	EditModalOpen     bool
	EditingListing    viewdata.FormListingVM
	DeleteConfirmOpen bool

	Categories []models.Category
	Conditions []models.Condition
	Locations  []models.Location
}

// RenderDetail renders the product detail view. A stale subject (deleted
// from under the view) falls back to the grid.
func RenderDetail(w http.ResponseWriter, r *http.Request, st models.AppState) {
	if st.ViewingListing == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	l := *st.ViewingListing

	canManage := st.CurrentUser != nil &&
		(st.CurrentUser.IsAdmin || st.CurrentUser.NIM == l.SellerID)

	data := detailPageData{
		BaseVM:            viewdata.NewBaseVM(st, l.Title),
		Listing:           viewdata.NewListingVM(l, canManage, st.Users),
		DeleteConfirmOpen: st.IsDeleteConfirmOpen,
		Categories:        models.Categories,
		Conditions:        models.Conditions,
		Locations:         models.Locations,
	}
	if st.IsEditModalOpen && st.EditingListing != nil {
		data.EditModalOpen = true
		data.EditingListing = viewdata.NewFormListingVM(*st.EditingListing)
	}

	templates.Render(w, r, "listing_detail", data)
}

// ServeDetail handles GET /listings/{id}: open the detail view.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	id, err := listingID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "detail: bad listing id", err, "/")
		return
	}
	svc.OpenDetail(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleBack handles POST /listings/back: leave the detail view.
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.Back()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Creation                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleNewOpen handles POST /listings/new.
func (h *Handler) HandleNewOpen(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.OpenCreateModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNewCancel handles POST /listings/new/cancel.
func (h *Handler) HandleNewCancel(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CloseCreateModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleCreate handles POST /listings.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	in, err := listingInput(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "create listing: parse form failed", err, "/")
		return
	}
	svc.CreateListing(in)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Editing                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleEditOpen handles POST /listings/{id}/edit/open.
func (h *Handler) HandleEditOpen(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	id, err := listingID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "edit: bad listing id", err, "/")
		return
	}
	svc.OpenEditModal(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditCancel handles POST /listings/{id}/edit/cancel.
func (h *Handler) HandleEditCancel(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CancelEdit()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEdit handles POST /listings/{id}/edit.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	id, err := listingID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "edit: bad listing id", err, "/")
		return
	}
	in, err := listingInput(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "edit listing: parse form failed", err, "/")
		return
	}
	svc.UpdateListing(id, in)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Deletion                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDeleteOpen handles POST /listings/{id}/delete/open.
func (h *Handler) HandleDeleteOpen(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	id, err := listingID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "delete: bad listing id", err, "/")
		return
	}
	svc.OpenDeleteConfirm(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDeleteCancel handles POST /listings/delete/cancel.
func (h *Handler) HandleDeleteCancel(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CancelDelete()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDeleteConfirm handles POST /listings/delete/confirm.
func (h *Handler) HandleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ConfirmDelete()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Moderation                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleFlag handles POST /listings/{id}/flag: toggle the moderation mark.
func (h *Handler) HandleFlag(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	id, err := listingID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "flag: bad listing id", err, "/")
		return
	}
	svc.ToggleFlag(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func listingID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// listingInput reads the shared create/edit form fields. Price parse
// failures become zero and fall to the domain validation, which answers
// with the proper toast.
func listingInput(r *http.Request) (market.ListingInput, error) {
	if err := r.ParseForm(); err != nil {
		return market.ListingInput{}, err
	}

	price, _ := strconv.ParseInt(strings.TrimSpace(r.FormValue("price")), 10, 64)
	return market.ListingInput{
		Title:       r.FormValue("title"),
		Price:       price,
		Category:    models.Category(r.FormValue("category")),
		Condition:   models.Condition(r.FormValue("condition")),
		Location:    models.Location(r.FormValue("location")),
		Description: r.FormValue("description"),
		ImageRef:    r.FormValue("image_url"),
	}, nil
}
