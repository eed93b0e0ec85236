// internal/app/market/browse.go
package market

import (
	"github.com/pasarunsri/pasarhub/internal/app/state"
	"github.com/pasarunsri/pasarhub/internal/app/system/inputval"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Search replaces the free-text query, leaving every other criterion as is.
func (s *Service) Search(query string) {
	f := s.Store.State().Filter
	f.Query = query
	s.Store.SetState(state.Patch{Filter: state.Set(f)})
}

// SetFacultyFilter narrows the grid to one faculty (click-through from a
// seller's faculty link).
func (s *Service) SetFacultyFilter(faculty string) {
	if !models.ValidFaculty(faculty) {
		s.Notif.Error("Fakultas tidak dikenal.")
		return
	}
	f := s.Store.State().Filter
	f.Faculty = faculty
	s.Store.SetState(state.Patch{Filter: state.Set(f)})
}

// ClearFacultyFilter removes the faculty restriction only.
func (s *Service) ClearFacultyFilter() {
	f := s.Store.State().Filter
	f.Faculty = ""
	s.Store.SetState(state.Patch{Filter: state.Set(f)})
}

// OpenFilterModal shows the advanced filter form.
func (s *Service) OpenFilterModal() {
	s.Store.SetState(state.Patch{IsFilterModalOpen: state.Set(true)})
}

// CloseFilterModal dismisses the advanced filter form.
func (s *Service) CloseFilterModal() {
	s.Store.SetState(state.Patch{IsFilterModalOpen: state.Set(false)})
}

// FilterInput is the advanced filter form: everything except the free-text
// query and faculty, which have their own controls.
type FilterInput struct {
	Location   models.Location
	Category   models.Category
	Conditions []models.Condition
	MinPrice   *int64
	MaxPrice   *int64
}

// ApplyFilter replaces the modal-owned criteria, preserving the query and
// faculty restriction.
func (s *Service) ApplyFilter(in FilterInput) bool {
	if in.Location != "" && !in.Location.Valid() {
		s.Notif.Error("Lokasi kampus tidak dikenal.")
		return false
	}
	if in.Category != "" && !in.Category.Valid() {
		s.Notif.Error("Kategori tidak dikenal.")
		return false
	}
	for _, c := range in.Conditions {
		if !c.Valid() {
			s.Notif.Error("Kondisi tidak dikenal.")
			return false
		}
	}
	if !inputval.IsValidPriceRange(in.MinPrice, in.MaxPrice) {
		s.Notif.Error("Rentang harga tidak valid.")
		return false
	}

	cur := s.Store.State().Filter
	s.Store.SetState(state.Patch{
		Filter: state.Set(models.Filter{
			Query:      cur.Query,
			Faculty:    cur.Faculty,
			Location:   in.Location,
			Category:   in.Category,
			Conditions: in.Conditions,
			MinPrice:   in.MinPrice,
			MaxPrice:   in.MaxPrice,
		}),
		IsFilterModalOpen: state.Set(false),
	})
	return true
}

// ToggleNotificationMenu flips the bell menu, closing the profile menu.
func (s *Service) ToggleNotificationMenu() {
	st := s.Store.State()
	s.Store.SetState(state.Patch{
		IsNotificationMenuOpen: state.Set(!st.IsNotificationMenuOpen),
		IsProfileMenuOpen:      state.Set(false),
	})
}

// SetNotificationMode switches notification handling and closes the menu.
func (s *Service) SetNotificationMode(mode models.NotificationMode) bool {
	if !mode.Valid() {
		return false
	}
	s.Store.SetState(state.Patch{
		NotificationMode:       state.Set(mode),
		IsNotificationMenuOpen: state.Set(false),
	})
	return true
}

// ToggleProfileMenu flips the avatar menu, closing the bell menu.
func (s *Service) ToggleProfileMenu() {
	st := s.Store.State()
	s.Store.SetState(state.Patch{
		IsProfileMenuOpen:      state.Set(!st.IsProfileMenuOpen),
		IsNotificationMenuOpen: state.Set(false),
	})
}

// GoHome is the header logo action.
func (s *Service) GoHome() {
	s.Store.GoHome()
}
