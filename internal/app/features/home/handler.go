// internal/app/features/home/handler.go
package home

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/pasarunsri/pasarhub/internal/app/features/errors"
	listingsfeature "github.com/pasarunsri/pasarhub/internal/app/features/listings"
	loginfeature "github.com/pasarunsri/pasarhub/internal/app/features/login"
	profilefeature "github.com/pasarunsri/pasarhub/internal/app/features/profile"
	"github.com/pasarunsri/pasarhub/internal/app/features/shared"
	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/system/viewdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Handler serves the root page and the browse actions: search, faculty
// restriction, the filter modal, notification settings, and the menus.
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
| GET / – render dispatch                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders the whole page for the session's current view. Every
// action posts a state change and redirects back here, so this is the one
// place state becomes HTML.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	st := svc.Store.State()

	switch st.CurrentView {
	case models.ViewLogin:
		loginfeature.RenderLogin(w, r, st)
	case models.ViewRegister:
		loginfeature.RenderRegister(w, r, st)
	case models.ViewProfile:
		profilefeature.RenderProfile(w, r, st)
	case models.ViewProductDetail:
		listingsfeature.RenderDetail(w, r, st)
	default:
		RenderHome(w, r, st)
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Home view                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

type homePageData struct {
	viewdata.BaseVM
	Listings      []viewdata.ListingVM
	TotalListings int
	ActiveFaculty string
	Filter        viewdata.FilterVM

	FilterModalOpen   bool
	CreateModalOpen   bool
	EditModalOpen     bool
	EditingListing    viewdata.FormListingVM
	DeleteConfirmOpen bool

	Faculties  []string
	Categories []models.Category
	Conditions []models.Condition
	Locations  []models.Location
}

// RenderHome renders the listing grid with whatever modal is open on top.
func RenderHome(w http.ResponseWriter, r *http.Request, st models.AppState) {
	data := homePageData{
		BaseVM:        viewdata.NewBaseVM(st, "Beranda"),
		Listings:      viewdata.VisibleListings(st),
		TotalListings: len(st.Listings),
		ActiveFaculty: st.Filter.Faculty,
		Filter:        viewdata.NewFilterVM(st.Filter),

		FilterModalOpen:   st.IsFilterModalOpen,
		CreateModalOpen:   st.IsModalOpen,
		DeleteConfirmOpen: st.IsDeleteConfirmOpen,

		Faculties:  models.Faculties,
		Categories: models.Categories,
		Conditions: models.Conditions,
		Locations:  models.Locations,
	}
	if st.IsEditModalOpen && st.EditingListing != nil {
		data.EditModalOpen = true
		data.EditingListing = viewdata.NewFormListingVM(*st.EditingListing)
	}

	templates.Render(w, r, "home", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Browse actions                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSearch handles POST /search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "search: parse form failed", err, "/")
		return
	}
	svc.Search(r.FormValue("q"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleFaculty handles POST /faculty: restrict the grid to one faculty.
func (h *Handler) HandleFaculty(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "faculty filter: parse form failed", err, "/")
		return
	}
	svc.SetFacultyFilter(r.FormValue("faculty"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleFacultyClear handles POST /faculty/clear.
func (h *Handler) HandleFacultyClear(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ClearFacultyFilter()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleFilterOpen handles POST /filter/open.
func (h *Handler) HandleFilterOpen(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.OpenFilterModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleFilterCancel handles POST /filter/cancel.
func (h *Handler) HandleFilterCancel(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CloseFilterModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleFilterApply handles POST /filter/apply.
func (h *Handler) HandleFilterApply(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "filter: parse form failed", err, "/")
		return
	}

	in := market.FilterInput{
		Location: models.Location(r.FormValue("location")),
		Category: models.Category(r.FormValue("category")),
		MinPrice: parsePrice(r.FormValue("min_price")),
		MaxPrice: parsePrice(r.FormValue("max_price")),
	}
	for _, c := range r.Form["conditions"] {
		in.Conditions = append(in.Conditions, models.Condition(c))
	}

	svc.ApplyFilter(in)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNotifToggle handles POST /notifications/toggle.
func (h *Handler) HandleNotifToggle(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ToggleNotificationMenu()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNotifMode handles POST /notifications/mode.
func (h *Handler) HandleNotifMode(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "notification mode: parse form failed", err, "/")
		return
	}
	svc.SetNotificationMode(models.NotificationMode(r.FormValue("mode")))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleProfileMenu handles POST /menu/profile.
func (h *Handler) HandleProfileMenu(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ToggleProfileMenu()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleHome handles POST /home: back to a clean grid.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.GoHome()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parsePrice turns a form value into an optional bound. Blank and garbage
// both mean "no bound"; the number inputs keep honest users numeric.
func parsePrice(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
