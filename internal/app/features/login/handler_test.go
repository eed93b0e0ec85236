package login_test

import (
	"net/http"
	"net/url"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/pasarunsri/pasarhub/internal/app/features/errors"
	"github.com/pasarunsri/pasarhub/internal/app/features/login"
	"github.com/pasarunsri/pasarhub/internal/app/market"
	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/auth"
	"github.com/pasarunsri/pasarhub/internal/app/system/seed"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
	"github.com/pasarunsri/pasarhub/internal/testutil"
)

const testEngineID = "uji-engine"

// newTestHandler builds a handler over a registry whose engines come up
// pre-loaded with the seed dataset and no persistence.
func newTestHandler() (*login.Handler, *market.Registry) {
	reg := market.NewRegistry(func() *market.Service {
		st := state.New(nil, 0, nil)
		svc := market.NewService(st, market.Config{AdminLoginID: "super diddy", AdminPassword: "123"}, nil)
		doc := seed.Document()
		st.SetState(state.Patch{
			Users:     state.Set(doc.Users),
			Listings:  state.Set(doc.Listings),
			IsLoading: state.Set(false),
		})
		return svc
	})
	return login.NewHandler(reg, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop()), reg
}

func post(h http.HandlerFunc, target string, form url.Values) *testutil.ResponseRecorder {
	req := auth.WithTestEngineID(testutil.NewFormRequest(http.MethodPost, target, form), testEngineID)
	rec := testutil.NewRecorder()
	h(rec, req)
	return rec
}

func hasToast(st models.AppState, message string) bool {
	for _, n := range st.Notifications {
		if n.Message == message {
			return true
		}
	}
	return false
}

func TestHandleLoginPost_Success(t *testing.T) {
	h, reg := newTestHandler()
	u := reg.Get(testEngineID).Store.State().Users[0]

	rec := post(h.HandleLoginPost, "/login", url.Values{
		"nim":      {u.NIM},
		"password": {u.Password},
	})
	rec.AssertRedirect(t, "/")

	st := reg.Get(testEngineID).Store.State()
	if st.CurrentUser == nil || st.CurrentUser.NIM != u.NIM {
		t.Fatalf("CurrentUser = %+v, want %s", st.CurrentUser, u.NIM)
	}
	if st.CurrentView != models.ViewHome {
		t.Errorf("CurrentView = %s, want home", st.CurrentView)
	}
}

func TestHandleLoginPost_WrongPassword(t *testing.T) {
	h, reg := newTestHandler()
	u := reg.Get(testEngineID).Store.State().Users[0]

	rec := post(h.HandleLoginPost, "/login", url.Values{
		"nim":      {u.NIM},
		"password": {"salah-total"},
	})
	rec.AssertRedirect(t, "/")

	st := reg.Get(testEngineID).Store.State()
	if st.CurrentUser != nil {
		t.Error("failed login must not sign anyone in")
	}
	if st.CurrentView != models.ViewLogin {
		t.Errorf("CurrentView = %s, want login", st.CurrentView)
	}
	if !st.IsErrorFlashActive {
		t.Error("failed login should trigger the error flash")
	}
	if !hasToast(st, "NIM atau password salah. Coba lagi.") {
		t.Error("missing wrong-credentials toast")
	}
}

func TestHandleLoginPost_AdminBackdoor(t *testing.T) {
	h, reg := newTestHandler()

	post(h.HandleLoginPost, "/login", url.Values{
		"nim":      {"SUPER DIDDY"}, // login id matches case-insensitively
		"password": {"123"},
	})

	st := reg.Get(testEngineID).Store.State()
	if st.CurrentUser == nil || !st.CurrentUser.IsAdmin {
		t.Fatalf("CurrentUser = %+v, want admin", st.CurrentUser)
	}
}

func TestHandleDemoLogin(t *testing.T) {
	h, reg := newTestHandler()

	rec := post(h.HandleDemoLogin, "/login/demo", nil)
	rec.AssertRedirect(t, "/")

	st := reg.Get(testEngineID).Store.State()
	if st.CurrentUser == nil || st.CurrentUser.Name != "Sigma Chad" {
		t.Fatalf("CurrentUser = %+v, want demo account", st.CurrentUser)
	}
	if st.CurrentView != models.ViewHome {
		t.Errorf("CurrentView = %s, want home", st.CurrentView)
	}
}

func TestHandleRegisterPost_Success(t *testing.T) {
	h, reg := newTestHandler()
	before := len(reg.Get(testEngineID).Store.State().Users)

	rec := post(h.HandleRegisterPost, "/register", url.Values{
		"name":     {"Mahasiswa Baru"},
		"nim":      {"09011282399001"},
		"email":    {"mahasiswabaru@unsri.ac.id"},
		"password": {"rahasia-panjang"},
		"faculty":  {"FASILKOM"},
		"phone":    {"6281277700001"},
	})
	rec.AssertRedirect(t, "/")

	st := reg.Get(testEngineID).Store.State()
	if len(st.Users) != before+1 {
		t.Fatalf("user count = %d, want %d", len(st.Users), before+1)
	}
	if st.CurrentUser != nil {
		t.Error("registration must not sign the new account in")
	}
	if st.CurrentView != models.ViewLogin {
		t.Errorf("CurrentView = %s, want login", st.CurrentView)
	}
	if !hasToast(st, "Akun berhasil dibuat! Silakan masuk.") {
		t.Error("missing registration success toast")
	}
}

func TestHandleRegisterPost_NonCampusEmail(t *testing.T) {
	h, reg := newTestHandler()
	before := len(reg.Get(testEngineID).Store.State().Users)

	post(h.HandleRegisterPost, "/register", url.Values{
		"name":     {"Orang Luar"},
		"nim":      {"09011282399002"},
		"email":    {"orangluar@gmail.com"},
		"password": {"rahasia-panjang"},
		"faculty":  {"FE"},
		"phone":    {"6281277700002"},
	})

	st := reg.Get(testEngineID).Store.State()
	if len(st.Users) != before {
		t.Error("rejected registration must not add a user")
	}
	if !hasToast(st, "Pendaftaran wajib menggunakan email @unsri.ac.id.") {
		t.Error("missing campus-email toast")
	}
}

func TestHandleRegisterPost_DuplicateNIM(t *testing.T) {
	h, reg := newTestHandler()
	st0 := reg.Get(testEngineID).Store.State()
	existing := st0.Users[0]

	post(h.HandleRegisterPost, "/register", url.Values{
		"name":     {"Kembaran"},
		"nim":      {existing.NIM},
		"email":    {"kembaran@unsri.ac.id"},
		"password": {"rahasia-panjang"},
		"faculty":  {"FT"},
		"phone":    {"6281277700003"},
	})

	st := reg.Get(testEngineID).Store.State()
	if len(st.Users) != len(st0.Users) {
		t.Error("duplicate NIM must not add a user")
	}
	if !hasToast(st, "NIM ini sudah terdaftar. Silakan login.") {
		t.Error("missing duplicate-NIM toast")
	}
}

func TestServeLogin_SwitchesView(t *testing.T) {
	h, reg := newTestHandler()
	reg.Get(testEngineID).Store.NavigateTo(models.ViewRegister, state.Patch{})

	req := auth.WithTestEngineID(testutil.NewRequest(http.MethodGet, "/login"), testEngineID)
	rec := testutil.NewRecorder()
	h.ServeLogin(rec, req)
	rec.AssertRedirect(t, "/")

	if got := reg.Get(testEngineID).Store.State().CurrentView; got != models.ViewLogin {
		t.Errorf("CurrentView = %s, want login", got)
	}
}

func TestServeRegister_SwitchesView(t *testing.T) {
	h, reg := newTestHandler()

	req := auth.WithTestEngineID(testutil.NewRequest(http.MethodGet, "/register"), testEngineID)
	rec := testutil.NewRecorder()
	h.ServeRegister(rec, req)
	rec.AssertRedirect(t, "/")

	if got := reg.Get(testEngineID).Store.State().CurrentView; got != models.ViewRegister {
		t.Errorf("CurrentView = %s, want register", got)
	}
}

func TestLogoutFlow(t *testing.T) {
	h, reg := newTestHandler()
	svc := reg.Get(testEngineID)
	u := svc.Store.State().Users[0]
	if !svc.Login(u.NIM, u.Password) {
		t.Fatal("seed login failed")
	}

	post(h.HandleLogoutOpen, "/logout/open", nil)
	if !reg.Get(testEngineID).Store.State().IsLogoutModalOpen {
		t.Fatal("open should show the logout confirmation")
	}

	post(h.HandleLogoutCancel, "/logout/cancel", nil)
	st := reg.Get(testEngineID).Store.State()
	if st.IsLogoutModalOpen {
		t.Error("cancel should dismiss the confirmation")
	}
	if st.CurrentUser == nil {
		t.Error("cancel must keep the user signed in")
	}

	post(h.HandleLogoutOpen, "/logout/open", nil)
	post(h.HandleLogoutConfirm, "/logout/confirm", nil)
	st = reg.Get(testEngineID).Store.State()
	if st.CurrentUser != nil {
		t.Error("confirm should sign the user out")
	}
	if st.CurrentView != models.ViewLogin {
		t.Errorf("CurrentView = %s, want login", st.CurrentView)
	}
	if st.IsLogoutModalOpen {
		t.Error("confirm should close the confirmation")
	}
}

func TestHandlers_MissingEngineID(t *testing.T) {
	h, _ := newTestHandler()

	rec := testutil.NewRecorder()
	h.HandleLoginPost(rec, testutil.NewFormRequest(http.MethodPost, "/login", nil))
	rec.AssertStatus(t, http.StatusInternalServerError)
}
