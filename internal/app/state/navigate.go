// internal/app/state/navigate.go
package state

import "github.com/pasarunsri/pasarhub/internal/domain/models"

// NavigateTo switches the current view and applies extra in the same state
// transition. Entering the product detail view from anywhere else captures
// the view being left, so back navigation can restore it.
func (s *Store) NavigateTo(view models.View, extra Patch) {
	cur := s.State().CurrentView
	extra.CurrentView = Set(view)
	if view == models.ViewProductDetail && cur != models.ViewProductDetail && !extra.PreviousView.set {
		extra.PreviousView = Set(cur)
	}
	s.SetState(extra)
}

// GoBack leaves the product detail view for the view it was entered from,
// falling back to home when no previous view was recorded. The detail
// subject and the recorded previous view are both cleared.
func (s *Store) GoBack() {
	target := s.State().PreviousView
	if target == "" {
		target = models.ViewHome
	}
	s.SetState(Patch{
		CurrentView:    Set(target),
		PreviousView:   Set(models.View("")),
		ViewingListing: Set[*models.Listing](nil),
	})
}

// GoHome is the header's home action: it returns to the listing grid with a
// clean browsing context. Every filter criterion except the free-text query
// is reset, and any profile or detail subject is dropped.
func (s *Store) GoHome() {
	st := s.State()
	s.SetState(Patch{
		CurrentView:      Set(models.ViewHome),
		PreviousView:     Set(models.View("")),
		Filter:           Set(models.Filter{Query: st.Filter.Query}),
		ViewingListing:   Set[*models.Listing](nil),
		ViewingProfileOf: Set[*models.User](nil),
	})
}
