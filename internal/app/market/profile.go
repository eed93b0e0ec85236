// internal/app/market/profile.go
package market

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/htmlsanitize"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// ViewOwnProfile opens the signed-in user's profile from the avatar menu.
func (s *Service) ViewOwnProfile() bool {
	st := s.Store.State()
	user := currentUser(st)
	if user == nil {
		s.Notif.Error("Anda harus login terlebih dahulu.")
		return false
	}
	u := *user
	s.Store.NavigateTo(models.ViewProfile, state.Patch{
		ViewingProfileOf:  state.Set(&u),
		IsProfileMenuOpen: state.Set(false),
	})
	return true
}

// ViewProfileByName opens a seller's profile from a listing card, resolving
// by display name since that is all the seller snapshot carries.
func (s *Service) ViewProfileByName(name string) bool {
	st := s.Store.State()
	user := models.FindUserByName(st.Users, name)
	if user == nil {
		s.Notif.Error("Profil untuk " + name + " tidak ditemukan.")
		return false
	}
	u := *user
	s.Store.NavigateTo(models.ViewProfile, state.Patch{ViewingProfileOf: state.Set(&u)})
	return true
}

// StartEditProfile switches the profile view into edit mode.
func (s *Service) StartEditProfile() {
	s.Store.SetState(state.Patch{IsEditingProfile: state.Set(true)})
}

// CancelEditProfile leaves edit mode without saving.
func (s *Service) CancelEditProfile() {
	s.Store.SetState(state.Patch{IsEditingProfile: state.Set(false)})
}

// ProfileInput is the editable subset of a profile. Identity fields (NIM,
// email, password) are not editable here.
type ProfileInput struct {
	Name    string
	Faculty string
	Phone   string
}

// SaveProfile applies profile edits for the signed-in user and fans the
// change out to every denormalized copy.
func (s *Service) SaveProfile(in ProfileInput) bool {
	st := s.Store.State()
	user := currentUser(st)
	if user == nil {
		s.Notif.Error("Anda harus login terlebih dahulu.")
		return false
	}

	in.Name = strings.TrimSpace(htmlsanitize.Sanitize(in.Name))
	in.Faculty = strings.TrimSpace(in.Faculty)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Faculty == "" || in.Phone == "" {
		s.Notif.Error("Semua kolom wajib diisi.")
		return false
	}
	if !models.ValidFaculty(in.Faculty) && !user.IsAdmin {
		s.Notif.Error("Fakultas tidak dikenal.")
		return false
	}

	updated := *user
	updated.Name = in.Name
	updated.Faculty = in.Faculty
	updated.Phone = in.Phone

	s.log.Info("profile updated", zap.String("nim", updated.NIM))
	s.Notif.Success("Profil berhasil diperbarui.")
	s.applyUserUpdate(updated, state.Patch{IsEditingProfile: state.Set(false)})
	return true
}

// OpenVerificationModal shows the email verification dialog.
func (s *Service) OpenVerificationModal() {
	s.Store.SetState(state.Patch{IsVerificationModalOpen: state.Set(true)})
}

// CloseVerificationModal dismisses the email verification dialog.
func (s *Service) CloseVerificationModal() {
	s.Store.SetState(state.Patch{IsVerificationModalOpen: state.Set(false)})
}

// VerifyEmail marks the signed-in user verified when the typed address
// matches their registered one (case-insensitive). Verifying an already
// verified account is a harmless no-op.
func (s *Service) VerifyEmail(email string) bool {
	st := s.Store.State()
	user := currentUser(st)
	if user == nil {
		s.Notif.Error("Anda harus login terlebih dahulu.")
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(email), user.Email) {
		s.Notif.Error("Email tidak cocok dengan akun Anda.")
		return false
	}

	updated := *user
	updated.IsVerified = true

	s.log.Info("email verified", zap.String("nim", updated.NIM))
	s.Notif.Success("Email berhasil diverifikasi!")
	s.applyUserUpdate(updated, state.Patch{IsVerificationModalOpen: state.Set(false)})
	return true
}

// applyUserUpdate is the single write path for user mutations. It rewrites
// the users entry, refreshes the seller snapshot on every listing the user
// owns, and re-points the current-user and viewed-profile references, all
// in one state transition. It runs unconditionally on every user edit, even
// when the user owns no listings, so a snapshot can never be missed.
func (s *Service) applyUserUpdate(updated models.User, extra state.Patch) {
	st := s.Store.State()

	users := make([]models.User, len(st.Users))
	copy(users, st.Users)
	for i := range users {
		if users[i].NIM == updated.NIM {
			users[i] = updated
			break
		}
	}

	snapshot := updated.Snapshot()
	listings := make([]models.Listing, len(st.Listings))
	copy(listings, st.Listings)
	for i := range listings {
		if listings[i].SellerID == updated.NIM {
			listings[i].Seller = snapshot
		}
	}

	patch := extra
	patch.Users = state.Set(users)
	patch.Listings = state.Set(listings)

	if st.CurrentUser != nil && st.CurrentUser.NIM == updated.NIM {
		u := updated
		patch.CurrentUser = state.Set(&u)
	}
	if st.ViewingProfileOf != nil && st.ViewingProfileOf.NIM == updated.NIM {
		u := updated
		patch.ViewingProfileOf = state.Set(&u)
	}
	if st.ViewingListing != nil && st.ViewingListing.SellerID == updated.NIM {
		l := *st.ViewingListing
		l.Seller = snapshot
		patch.ViewingListing = state.Set(&l)
	}

	s.Store.SetState(patch)
}
