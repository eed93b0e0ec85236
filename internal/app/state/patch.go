// internal/app/state/patch.go
package state

import "github.com/pasarunsri/pasarhub/internal/domain/models"

// Field is an optional patch value. The zero Field leaves the target field
// untouched; Set(v) replaces it wholesale, including nil pointers and
// whole slices. There is no deep merge.
type Field[T any] struct {
	set   bool
	value T
}

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] { return Field[T]{set: true, value: v} }

// Get returns the carried value and whether it was set.
func (f Field[T]) Get() (T, bool) { return f.value, f.set }

// Patch is a partial AppState. Applying it replaces exactly the fields that
// were Set, one level deep, in a single state transition.
type Patch struct {
	IsLoading    Field[bool]
	CurrentView  Field[models.View]
	PreviousView Field[models.View]

	Users       Field[[]models.User]
	Listings    Field[[]models.Listing]
	CurrentUser Field[*models.User]

	Filter Field[models.Filter]

	ViewingListing   Field[*models.Listing]
	ViewingProfileOf Field[*models.User]

	Notifications          Field[[]models.Notification]
	NotificationMode       Field[models.NotificationMode]
	IsNotificationMenuOpen Field[bool]

	IsModalOpen             Field[bool]
	IsEditModalOpen         Field[bool]
	EditingListing          Field[*models.Listing]
	IsDeleteConfirmOpen     Field[bool]
	DeletingListingID       Field[int64]
	IsFilterModalOpen       Field[bool]
	IsLogoutModalOpen       Field[bool]
	IsVerificationModalOpen Field[bool]
	IsEditingProfile        Field[bool]
	IsProfileMenuOpen       Field[bool]

	IsErrorFlashActive Field[bool]
	Offline            Field[bool]
}

// touchesDocument reports whether applying p changes persisted data and so
// must schedule a save.
func (p Patch) touchesDocument() bool {
	return p.Users.set || p.Listings.set
}

func (p Patch) apply(s *models.AppState) {
	if p.IsLoading.set {
		s.IsLoading = p.IsLoading.value
	}
	if p.CurrentView.set {
		s.CurrentView = p.CurrentView.value
	}
	if p.PreviousView.set {
		s.PreviousView = p.PreviousView.value
	}
	if p.Users.set {
		s.Users = p.Users.value
	}
	if p.Listings.set {
		s.Listings = p.Listings.value
	}
	if p.CurrentUser.set {
		s.CurrentUser = p.CurrentUser.value
	}
	if p.Filter.set {
		s.Filter = p.Filter.value
	}
	if p.ViewingListing.set {
		s.ViewingListing = p.ViewingListing.value
	}
	if p.ViewingProfileOf.set {
		s.ViewingProfileOf = p.ViewingProfileOf.value
	}
	if p.Notifications.set {
		s.Notifications = p.Notifications.value
	}
	if p.NotificationMode.set {
		s.NotificationMode = p.NotificationMode.value
	}
	if p.IsNotificationMenuOpen.set {
		s.IsNotificationMenuOpen = p.IsNotificationMenuOpen.value
	}
	if p.IsModalOpen.set {
		s.IsModalOpen = p.IsModalOpen.value
	}
	if p.IsEditModalOpen.set {
		s.IsEditModalOpen = p.IsEditModalOpen.value
	}
	if p.EditingListing.set {
		s.EditingListing = p.EditingListing.value
	}
	if p.IsDeleteConfirmOpen.set {
		s.IsDeleteConfirmOpen = p.IsDeleteConfirmOpen.value
	}
	if p.DeletingListingID.set {
		s.DeletingListingID = p.DeletingListingID.value
	}
	if p.IsFilterModalOpen.set {
		s.IsFilterModalOpen = p.IsFilterModalOpen.value
	}
	if p.IsLogoutModalOpen.set {
		s.IsLogoutModalOpen = p.IsLogoutModalOpen.value
	}
	if p.IsVerificationModalOpen.set {
		s.IsVerificationModalOpen = p.IsVerificationModalOpen.value
	}
	if p.IsEditingProfile.set {
		s.IsEditingProfile = p.IsEditingProfile.value
	}
	if p.IsProfileMenuOpen.set {
		s.IsProfileMenuOpen = p.IsProfileMenuOpen.value
	}
	if p.IsErrorFlashActive.set {
		s.IsErrorFlashActive = p.IsErrorFlashActive.value
	}
	if p.Offline.set {
		s.Offline = p.Offline.value
	}
}
