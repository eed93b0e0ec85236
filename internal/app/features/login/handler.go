// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/pasarunsri/pasarhub/internal/app/features/errors"
	"github.com/pasarunsri/pasarhub/internal/app/features/shared"
	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/viewdata"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Handler serves sign-in, registration, and the logout confirmation flow.
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
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginPageData struct {
	viewdata.BaseVM
}

type registerPageData struct {
	viewdata.BaseVM
	Faculties []string
}

// RenderLogin renders the sign-in view.
func RenderLogin(w http.ResponseWriter, r *http.Request, st models.AppState) {
	templates.Render(w, r, "login", loginPageData{
		BaseVM: viewdata.NewBaseVM(st, "Masuk"),
	})
}

// RenderRegister renders the registration view.
func RenderRegister(w http.ResponseWriter, r *http.Request, st models.AppState) {
	templates.Render(w, r, "register", registerPageData{
		BaseVM:    viewdata.NewBaseVM(st, "Daftar"),
		Faculties: models.Faculties,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login, GET /register – view switches                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLogin handles GET /login: switch the session to the login view.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.Store.NavigateTo(models.ViewLogin, state.Patch{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ServeRegister handles GET /register.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.Store.NavigateTo(models.ViewRegister, state.Patch{})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLoginPost handles POST /login. Success and failure both land back
// on the root; the outcome arrives as a toast and, on failure, the error
// flash.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: parse form failed", err, "/")
		return
	}

	svc.Login(r.FormValue("nim"), r.FormValue("password"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDemoLogin handles POST /login/demo.
func (h *Handler) HandleDemoLogin(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.DemoLogin()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /register                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleRegisterPost handles POST /register.
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "register: parse form failed", err, "/")
		return
	}

	svc.Register(market.RegisterInput{
		Name:     r.FormValue("name"),
		NIM:      r.FormValue("nim"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Faculty:  r.FormValue("faculty"),
		Phone:    r.FormValue("phone"),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Logout flow                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLogoutOpen handles POST /logout/open.
func (h *Handler) HandleLogoutOpen(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.OpenLogoutModal()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogoutCancel handles POST /logout/cancel.
func (h *Handler) HandleLogoutCancel(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.CancelLogout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogoutConfirm handles POST /logout/confirm.
func (h *Handler) HandleLogoutConfirm(w http.ResponseWriter, r *http.Request) {
	svc, ok := shared.Engine(w, r, h.Registry)
	if !ok {
		return
	}
	svc.ConfirmLogout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
