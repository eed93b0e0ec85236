// internal/app/features/profile/handler.go
package profile

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/pasarunsri/pasarhub/internal/app/features/errors"
	"github.com/pasarunsri/pasarhub/internal/app/features/shared"
	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/system/viewdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Handler serves profile pages: viewing any seller, editing the signed-in
// account, and the email verification flow.
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
| Profile view                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

type profilePageData struct {
	viewdata.BaseVM
	Profile      viewdata.UserVM
	IsOwnProfile bool
	IsEditing    bool
	VerifyOpen   bool
	Listings     []viewdata.ListingVM
	Faculties    []string
}

// RenderProfile renders the profile view for the current subject. A stale
// subject falls back to the grid.
func RenderProfile(w http.ResponseWriter, r *http.Request, st models.AppState) {
	subject := st.ViewingProfileOf
	if subject == nil {
		subject = st.CurrentUser
	}
	if subject == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	own := st.CurrentUser != nil && st.CurrentUser.NIM == subject.NIM

	var owned []viewdata.ListingVM
	for _, l := range st.Listings {
		if l.SellerID == subject.NIM {
			canManage := st.CurrentUser != nil &&
				(st.CurrentUser.IsAdmin || st.CurrentUser.NIM == l.SellerID)
			owned = append(owned, viewdata.NewListingVM(l, canManage, st.Users))
		}
	}

	templates.Render(w, r, "profile", profilePageData{
		BaseVM:       viewdata.NewBaseVM(st, subject.Name),
		Profile:      viewdata.NewUserVM(*subject),
		IsOwnProfile: own,
		IsEditing:    own && st.IsEditingProfile,
		VerifyOpen:   own && st.IsVerificationModalOpen,
		Listings:     owned,
		Faculties:    models.Faculties,
	})
}

// ServeOwn handles GET /profile.
func (h *Handler) ServeOwn(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ViewOwnProfile()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ServeByName handles GET /profile/view?name=…: open a seller's profile.
func (h *Handler) ServeByName(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ViewProfileByName(query.Get(r, "name"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Profile editing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleEditStart handles POST /profile/edit/start.
func (h *Handler) HandleEditStart(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.StartEditProfile()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditCancel handles POST /profile/edit/cancel.
func (h *Handler) HandleEditCancel(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CancelEditProfile()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEdit handles POST /profile/edit.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "profile edit: parse form failed", err, "/")
		return
	}

	svc.SaveProfile(market.ProfileInput{
		Name:    r.FormValue("name"),
		Faculty: r.FormValue("faculty"),
		Phone:   r.FormValue("phone"),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Email verification                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleVerifyOpen handles POST /profile/verify/open.
func (h *Handler) HandleVerifyOpen(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.OpenVerificationModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleVerifyClose handles POST /profile/verify/close.
func (h *Handler) HandleVerifyClose(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CloseVerificationModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleVerify handles POST /profile/verify: confirm the campus email.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "verify: parse form failed", err, "/")
		return
	}
	svc.VerifyEmail(r.FormValue("email"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
