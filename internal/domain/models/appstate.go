// internal/domain/models/appstate.go
package models

// View names a top-level screen.
type View string

const (
	ViewLogin         View = "login"
	ViewRegister      View = "register"
	ViewHome          View = "home"
	ViewProfile       View = "profile"
	ViewProductDetail View = "productDetail"
)

// AppState is the whole application state for one session's engine. The
// state store owns the single mutable instance; everything the UI shows is
// derived from a snapshot of it on each render.
type AppState struct {
	IsLoading   bool
	CurrentView View

	// PreviousView is captured when entering productDetail so back
	// navigation can restore the originating view. Empty when unset.
	PreviousView View

	Users       []User
	Listings    []Listing
	CurrentUser *User

	Filter Filter

	// ViewingListing / ViewingProfileOf are the subjects of the
	// productDetail and profile views.
	ViewingListing   *Listing
	ViewingProfileOf *User

	Notifications          []Notification
	NotificationMode       NotificationMode
	IsNotificationMenuOpen bool

	// Modal and menu flags. Each modal renders on top of the current view.
	IsModalOpen             bool // create-listing modal
	IsEditModalOpen         bool
	EditingListing          *Listing
	IsDeleteConfirmOpen     bool
	DeletingListingID       int64
	IsFilterModalOpen       bool
	IsLogoutModalOpen       bool
	IsVerificationModalOpen bool
	IsEditingProfile        bool
	IsProfileMenuOpen       bool

	// IsErrorFlashActive drives the brief full-screen error flash overlay.
	IsErrorFlashActive bool

	// Offline marks degraded mode: the initial load failed and the engine
	// is running on the seed dataset without persistence guarantees.
	Offline bool
}
