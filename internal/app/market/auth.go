// internal/app/market/auth.go
package market

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/htmlsanitize"
	"github.com/pasarunsri/pasarhub/internal/app/system/inputval"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Login signs a user in by NIM and password and reports success. The stored
// credential is compared by plain equality; that is the persistence
// contract and both sides of it stay in sync only if neither hashes.
func (s *Service) Login(nim, password string) bool {
	if strings.EqualFold(nim, s.cfg.AdminLoginID) && password == s.cfg.AdminPassword {
		admin := &models.User{
			Name:       "Super Diddy",
			NIM:        "superadmin",
			Email:      "admin@pasarnsri.dev",
			Password:   "", // never kept in state for the backdoor account
			Faculty:    "Administration",
			Phone:      "N/A",
			IsVerified: true,
			IsAdmin:    true,
		}
		s.log.Info("admin login", zap.String("nim", admin.NIM))
		s.Notif.Success("Selamat datang, " + admin.Name + "!")
		s.Store.NavigateTo(models.ViewHome, state.Patch{CurrentUser: state.Set(admin)})
		return true
	}

	st := s.Store.State()
	user := models.FindUserByNIM(st.Users, nim)
	if user == nil || user.Password != password {
		s.Notif.Error("NIM atau password salah. Coba lagi.")
		s.Notif.TriggerErrorFlash()
		return false
	}

	u := *user
	s.log.Info("login", zap.String("nim", u.NIM))
	s.Store.NavigateTo(models.ViewHome, state.Patch{CurrentUser: state.Set(&u)})
	return true
}

// DemoLogin signs in the canned demo account, adding it to the user list
// the first time it is used in this session.
func (s *Service) DemoLogin() {
	demo := models.User{
		Name:       "Sigma Chad",
		NIM:        "09011282328001",
		Email:      "sigma@unsri.ac.id",
		Password:   "password123",
		Faculty:    "FASILKOM",
		Phone:      "6281200000001",
		IsVerified: false,
	}

	st := s.Store.State()
	patch := state.Patch{CurrentUser: state.Set(&demo)}
	if models.FindUserByName(st.Users, demo.Name) == nil {
		users := append(append([]models.User(nil), st.Users...), demo)
		patch.Users = state.Set(users)
	}
	s.log.Info("demo login")
	s.Store.NavigateTo(models.ViewHome, patch)
}

// OpenLogoutModal shows the logout confirmation, closing the profile menu
// it was opened from.
func (s *Service) OpenLogoutModal() {
	s.Store.SetState(state.Patch{
		IsLogoutModalOpen: state.Set(true),
		IsProfileMenuOpen: state.Set(false),
	})
}

// CancelLogout dismisses the logout confirmation.
func (s *Service) CancelLogout() {
	s.Store.SetState(state.Patch{IsLogoutModalOpen: state.Set(false)})
}

// ConfirmLogout ends the session and returns to the login view.
func (s *Service) ConfirmLogout() {
	s.Store.SetState(state.Patch{
		CurrentUser:       state.Set[*models.User](nil),
		CurrentView:       state.Set(models.ViewLogin),
		IsLogoutModalOpen: state.Set(false),
	})
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Name     string
	NIM      string
	Email    string
	Password string
	Faculty  string
	Phone    string
}

// Register creates an account and returns to the login view on success.
// Validation failures surface as error toasts and leave the state alone.
func (s *Service) Register(in RegisterInput) bool {
	in.Name = strings.TrimSpace(htmlsanitize.Sanitize(in.Name))
	in.NIM = strings.TrimSpace(in.NIM)
	in.Email = strings.TrimSpace(in.Email)
	in.Faculty = strings.TrimSpace(in.Faculty)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.NIM == "" || in.Email == "" || in.Password == "" || in.Faculty == "" || in.Phone == "" {
		s.Notif.Error("Semua kolom wajib diisi.")
		return false
	}

	st := s.Store.State()
	if models.FindUserByNIM(st.Users, in.NIM) != nil {
		s.Notif.Error("NIM ini sudah terdaftar. Silakan login.")
		return false
	}
	if !inputval.IsCampusEmail(in.Email) {
		s.Notif.Error("Pendaftaran wajib menggunakan email @unsri.ac.id.")
		return false
	}
	if !inputval.IsValidPassword(in.Password) {
		s.Notif.Error("Password harus memiliki minimal 10 karakter.")
		return false
	}

	user := models.User{
		Name:       in.Name,
		NIM:        in.NIM,
		Email:      in.Email,
		Password:   in.Password,
		Faculty:    in.Faculty,
		Phone:      in.Phone,
		IsVerified: false,
	}
	users := append(append([]models.User(nil), st.Users...), user)

	s.log.Info("account registered", zap.String("nim", user.NIM))
	s.Notif.Success("Akun berhasil dibuat! Silakan masuk.")
	s.Store.SetState(state.Patch{
		Users:       state.Set(users),
		CurrentView: state.Set(models.ViewLogin),
	})
	return true
}
