// internal/app/market/listings.go
package market

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/format"
	"github.com/pasarunsri/pasarhub/internal/app/system/htmlsanitize"
	"github.com/pasarunsri/pasarhub/internal/app/system/inputval"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// ListingInput is the create/edit listing form.
type ListingInput struct {
	Title       string
	Price       int64
	Category    models.Category
	Condition   models.Condition
	Location    models.Location
	Description string
	ImageRef    string
}

func (in *ListingInput) clean() {
	in.Title = strings.TrimSpace(htmlsanitize.Sanitize(in.Title))
	in.Description = strings.TrimSpace(htmlsanitize.Sanitize(in.Description))
	in.ImageRef = strings.TrimSpace(in.ImageRef)
}

func (s *Service) validListingInput(in ListingInput) bool {
	switch {
	case !inputval.IsValidTitle(in.Title):
		s.Notif.Error("Judul wajib diisi (maksimal 120 karakter).")
	case !inputval.IsValidPrice(in.Price):
		s.Notif.Error("Harga harus lebih dari nol.")
	case !in.Category.Valid():
		s.Notif.Error("Kategori tidak dikenal.")
	case !in.Condition.Valid():
		s.Notif.Error("Kondisi tidak dikenal.")
	case !in.Location.Valid():
		s.Notif.Error("Lokasi kampus tidak dikenal.")
	case !inputval.IsValidDescription(in.Description):
		s.Notif.Error("Deskripsi minimal 30 karakter.")
	case !inputval.IsValidImageRef(in.ImageRef):
		s.Notif.Error("Referensi gambar tidak valid.")
	default:
		return true
	}
	return false
}

// OpenCreateModal shows the create-listing form.
func (s *Service) OpenCreateModal() {
	s.Store.SetState(state.Patch{IsModalOpen: state.Set(true)})
}

// CloseCreateModal dismisses the create-listing form.
func (s *Service) CloseCreateModal() {
	s.Store.SetState(state.Patch{IsModalOpen: state.Set(false)})
}

// CreateListing publishes a new listing owned by the signed-in user and
// reports success. Unverified sellers are sent to their profile to finish
// verification first.
func (s *Service) CreateListing(in ListingInput) bool {
	st := s.Store.State()
	user := currentUser(st)
	if user == nil {
		s.Notif.Error("Anda harus login untuk membuat listing.")
		return false
	}
	if !user.IsVerified && !user.IsAdmin {
		s.Notif.Error("Verifikasi email Anda sebelum membuat listing.")
		s.Store.NavigateTo(models.ViewProfile, state.Patch{
			ViewingProfileOf:        state.Set(user),
			IsModalOpen:             state.Set(false),
			IsVerificationModalOpen: state.Set(true),
		})
		return false
	}

	in.clean()
	if !s.validListingInput(in) {
		return false
	}

	listing := models.Listing{
		ID:          s.nextListingID(),
		SellerID:    user.NIM,
		Title:       in.Title,
		Price:       in.Price,
		Category:    in.Category,
		Condition:   in.Condition,
		ImageURL:    in.ImageRef,
		Seller:      user.Snapshot(),
		Description: in.Description,
		DateListed:  format.Today(),
		Location:    in.Location,
	}

	listings := append([]models.Listing{listing}, st.Listings...)
	s.log.Info("listing created", zap.Int64("id", listing.ID), zap.String("seller", user.NIM))
	s.Notif.Success("Listing berhasil dibuat!")
	s.Store.SetState(state.Patch{
		Listings:    state.Set(listings),
		IsModalOpen: state.Set(false),
	})
	return true
}

// canManage reports whether the snapshot's user owns the listing or is an
// admin.
func canManage(st models.AppState, l models.Listing) bool {
	u := currentUser(st)
	return u != nil && (u.IsAdmin || u.NIM == l.SellerID)
}

// OpenEditModal opens the edit form for a listing the user may manage.
func (s *Service) OpenEditModal(id int64) bool {
	st := s.Store.State()
	l := models.FindListingByID(st.Listings, id)
	if l == nil {
		s.Notif.Error("Listing tidak ditemukan.")
		return false
	}
	if !canManage(st, *l) {
		s.Notif.Error("Anda tidak memiliki izin untuk mengubah listing ini.")
		return false
	}
	edit := *l
	s.Store.SetState(state.Patch{
		IsEditModalOpen: state.Set(true),
		EditingListing:  state.Set(&edit),
	})
	return true
}

// CancelEdit dismisses the edit form.
func (s *Service) CancelEdit() {
	s.Store.SetState(state.Patch{
		IsEditModalOpen: state.Set(false),
		EditingListing:  state.Set[*models.Listing](nil),
	})
}

// UpdateListing applies edited fields to a listing the user may manage.
// The seller snapshot and listing identity are not editable.
func (s *Service) UpdateListing(id int64, in ListingInput) bool {
	st := s.Store.State()
	target := models.FindListingByID(st.Listings, id)
	if target == nil {
		s.Notif.Error("Listing tidak ditemukan.")
		return false
	}
	if !canManage(st, *target) {
		s.Notif.Error("Anda tidak memiliki izin untuk mengubah listing ini.")
		return false
	}

	in.clean()
	if in.ImageRef == "" {
		in.ImageRef = target.ImageURL
	}
	if !s.validListingInput(in) {
		return false
	}

	listings := make([]models.Listing, len(st.Listings))
	copy(listings, st.Listings)
	var updated *models.Listing
	for i := range listings {
		if listings[i].ID == id {
			listings[i].Title = in.Title
			listings[i].Price = in.Price
			listings[i].Category = in.Category
			listings[i].Condition = in.Condition
			listings[i].Location = in.Location
			listings[i].Description = in.Description
			listings[i].ImageURL = in.ImageRef
			updated = &listings[i]
			break
		}
	}

	patch := state.Patch{
		Listings:        state.Set(listings),
		IsEditModalOpen: state.Set(false),
		EditingListing:  state.Set[*models.Listing](nil),
	}
	if st.ViewingListing != nil && st.ViewingListing.ID == id {
		view := *updated
		patch.ViewingListing = state.Set(&view)
	}

	s.log.Info("listing updated", zap.Int64("id", id))
	s.Notif.Success("Listing berhasil diperbarui.")
	s.Store.SetState(patch)
	return true
}

// OpenDeleteConfirm asks for confirmation before deleting a listing the
// user may manage.
func (s *Service) OpenDeleteConfirm(id int64) bool {
	st := s.Store.State()
	l := models.FindListingByID(st.Listings, id)
	if l == nil {
		s.Notif.Error("Listing tidak ditemukan.")
		return false
	}
	if !canManage(st, *l) {
		s.Notif.Error("Anda tidak memiliki izin untuk menghapus listing ini.")
		return false
	}
	s.Store.SetState(state.Patch{
		IsDeleteConfirmOpen: state.Set(true),
		DeletingListingID:   state.Set(id),
	})
	return true
}

// CancelDelete dismisses the delete confirmation.
func (s *Service) CancelDelete() {
	s.Store.SetState(state.Patch{
		IsDeleteConfirmOpen: state.Set(false),
		DeletingListingID:   state.Set(int64(0)),
	})
}

// ConfirmDelete removes the pending listing. Deleting the listing currently
// open in the detail view also navigates back to where it was entered from.
func (s *Service) ConfirmDelete() bool {
	st := s.Store.State()
	id := st.DeletingListingID
	target := models.FindListingByID(st.Listings, id)
	if target == nil {
		s.Notif.Error("Listing tidak ditemukan.")
		s.CancelDelete()
		return false
	}
	if !canManage(st, *target) {
		s.Notif.Error("Anda tidak memiliki izin untuk menghapus listing ini.")
		s.CancelDelete()
		return false
	}

	listings := make([]models.Listing, 0, len(st.Listings)-1)
	for _, l := range st.Listings {
		if l.ID != id {
			listings = append(listings, l)
		}
	}

	patch := state.Patch{
		Listings:            state.Set(listings),
		IsDeleteConfirmOpen: state.Set(false),
		DeletingListingID:   state.Set(int64(0)),
	}
	if st.CurrentView == models.ViewProductDetail && st.ViewingListing != nil && st.ViewingListing.ID == id {
		back := st.PreviousView
		if back == "" {
			back = models.ViewHome
		}
		patch.CurrentView = state.Set(back)
		patch.PreviousView = state.Set(models.View(""))
		patch.ViewingListing = state.Set[*models.Listing](nil)
	}

	s.log.Info("listing deleted", zap.Int64("id", id))
	s.Notif.Success("Listing berhasil dihapus.")
	s.Store.SetState(patch)
	return true
}

// ToggleFlag flips the moderation flag on a listing. Admin only.
func (s *Service) ToggleFlag(id int64) bool {
	st := s.Store.State()
	if !isAdmin(st) {
		s.Notif.Error("Hanya admin yang dapat menandai listing.")
		return false
	}
	target := models.FindListingByID(st.Listings, id)
	if target == nil {
		s.Notif.Error("Listing tidak ditemukan.")
		return false
	}

	listings := make([]models.Listing, len(st.Listings))
	copy(listings, st.Listings)
	var flagged bool
	var updated *models.Listing
	for i := range listings {
		if listings[i].ID == id {
			listings[i].IsFlagged = !listings[i].IsFlagged
			flagged = listings[i].IsFlagged
			updated = &listings[i]
			break
		}
	}

	patch := state.Patch{Listings: state.Set(listings)}
	if st.ViewingListing != nil && st.ViewingListing.ID == id {
		view := *updated
		patch.ViewingListing = state.Set(&view)
	}

	s.log.Info("listing flag toggled", zap.Int64("id", id), zap.Bool("flagged", flagged))
	if flagged {
		s.Notif.Success("Listing ditandai untuk moderasi.")
	} else {
		s.Notif.Success("Tanda moderasi dihapus.")
	}
	s.Store.SetState(patch)
	return true
}

// OpenDetail shows the product detail view for a listing.
func (s *Service) OpenDetail(id int64) bool {
	st := s.Store.State()
	l := models.FindListingByID(st.Listings, id)
	if l == nil {
		s.Notif.Error("Listing tidak ditemukan.")
		return false
	}
	view := *l
	s.Store.NavigateTo(models.ViewProductDetail, state.Patch{
		ViewingListing: state.Set(&view),
	})
	return true
}

// Back leaves the detail view for the view it was entered from.
func (s *Service) Back() {
	s.Store.GoBack()
}
