// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"strconv"

	"github.com/pasarunsri/pasarhub/internal/app/system/contact"
	"github.com/pasarunsri/pasarhub/internal/app/system/format"
	"github.com/pasarunsri/pasarhub/internal/app/system/htmlsanitize"
	"github.com/pasarunsri/pasarhub/internal/app/system/listingfilter"
	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// SiteName is the display name used in titles and the navbar.
const SiteName = "Pasar UNSRI"

// NotificationVM is one toast in the stack.
type NotificationVM struct {
	ID      int64
	Message string
	IsError bool
	Cue     bool
}

// UserVM carries the fields templates show for an account.
type UserVM struct {
	Name       string
	NIM        string
	Email      string
	Faculty    string
	Phone      string
	IsVerified bool
	IsAdmin    bool
}

// ListingVM is a listing prepared for display: price and date formatted,
// description converted to safe HTML, contact link precomputed.
type ListingVM struct {
	ID              int64
	Title           string
	PriceFormatted  string
	Category        string
	Condition       string
	Location        string
	ImageURL        string
	SellerName      string
	SellerFaculty   string
	SellerVerified  bool
	DescriptionHTML template.HTML
	DateFormatted   string
	WhatsAppURL     string
	IsFlagged       bool
	CanManage       bool
}

// BaseVM contains common fields for all pages. Embed it in page view
// models.
type BaseVM struct {
	SiteName string
	Title    string

	View       models.View
	IsLoggedIn bool
	IsAdmin    bool
	User       *UserVM

	// SearchQuery echoes the active query into the navbar input.
	SearchQuery string

	Notifications    []NotificationVM
	NotificationMode models.NotificationMode
	NotifMenuOpen    bool
	ProfileMenuOpen  bool
	LogoutModalOpen  bool
	ErrorFlash       bool
	Offline          bool
}

// NewBaseVM derives the shared page context from a state snapshot.
func NewBaseVM(st models.AppState, title string) BaseVM {
	vm := BaseVM{
		SiteName:         SiteName,
		Title:            title,
		View:             st.CurrentView,
		IsLoggedIn:       st.CurrentUser != nil,
		SearchQuery:      st.Filter.Query,
		Notifications:    Notifications(st.Notifications),
		NotificationMode: st.NotificationMode,
		NotifMenuOpen:    st.IsNotificationMenuOpen,
		ProfileMenuOpen:  st.IsProfileMenuOpen,
		LogoutModalOpen:  st.IsLogoutModalOpen,
		ErrorFlash:       st.IsErrorFlashActive,
		Offline:          st.Offline,
	}
	if st.CurrentUser != nil {
		u := NewUserVM(*st.CurrentUser)
		vm.User = &u
		vm.IsAdmin = st.CurrentUser.IsAdmin
	}
	return vm
}

// NewUserVM converts a user for display.
func NewUserVM(u models.User) UserVM {
	return UserVM{
		Name:       u.Name,
		NIM:        u.NIM,
		Email:      u.Email,
		Faculty:    u.Faculty,
		Phone:      u.Phone,
		IsVerified: u.IsVerified,
		IsAdmin:    u.IsAdmin,
	}
}

// Notifications converts the toast stack for display.
func Notifications(ns []models.Notification) []NotificationVM {
	out := make([]NotificationVM, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationVM{
			ID:      n.ID,
			Message: n.Message,
			IsError: n.Type == models.NotificationError,
			Cue:     n.Cue,
		})
	}
	return out
}

// NewListingVM converts a listing for display. canManage reflects whether
// the signed-in user may edit or delete it. The contact link needs the
// seller's phone, which the snapshot deliberately omits, so the owner is
// resolved from users; when the owner record is gone the link stays empty
// and the contact button is not rendered.
func NewListingVM(l models.Listing, canManage bool, users []models.User) ListingVM {
	var waURL string
	if owner := models.FindUserByNIM(users, l.SellerID); owner != nil {
		waURL = contact.WhatsAppURL(owner.Phone, l.Title)
	}
	return ListingVM{
		ID:              l.ID,
		Title:           l.Title,
		PriceFormatted:  format.Rupiah(l.Price),
		Category:        string(l.Category),
		Condition:       string(l.Condition),
		Location:        string(l.Location),
		ImageURL:        l.ImageURL,
		SellerName:      l.Seller.Name,
		SellerFaculty:   l.Seller.Faculty,
		SellerVerified:  l.Seller.IsVerified,
		DescriptionHTML: htmlsanitize.PrepareForDisplay(l.Description),
		DateFormatted:   format.Date(l.DateListed),
		WhatsAppURL:     waURL,
		IsFlagged:       l.IsFlagged,
		CanManage:       canManage,
	}
}

// VisibleListings applies the current filter and converts the result,
// preserving newest-first order.
func VisibleListings(st models.AppState) []ListingVM {
	visible := listingfilter.Visible(st.Listings, st.Filter)
	out := make([]ListingVM, 0, len(visible))
	for _, l := range visible {
		out = append(out, NewListingVM(l, canManage(st, l), st.Users))
	}
	return out
}

// FormListingVM carries raw listing values for edit-form inputs, unlike
// ListingVM which is formatted for display.
type FormListingVM struct {
	ID          int64
	Title       string
	Price       int64
	Category    string
	Condition   string
	Location    string
	Description string
	ImageURL    string
}

// NewFormListingVM converts a listing for form prefill.
func NewFormListingVM(l models.Listing) FormListingVM {
	return FormListingVM{
		ID:          l.ID,
		Title:       l.Title,
		Price:       l.Price,
		Category:    string(l.Category),
		Condition:   string(l.Condition),
		Location:    string(l.Location),
		Description: l.Description,
		ImageURL:    l.ImageURL,
	}
}

// FilterVM carries the active criteria for the filter modal inputs.
type FilterVM struct {
	Faculty   string
	Location  string
	Category  string
	BaruOn    bool
	SepertiOn bool
	BekasOn   bool
	MinPrice  string
	MaxPrice  string
}

// NewFilterVM converts the filter for form prefill.
func NewFilterVM(f models.Filter) FilterVM {
	vm := FilterVM{
		Faculty:   f.Faculty,
		Location:  string(f.Location),
		Category:  string(f.Category),
		BaruOn:    f.HasCondition(models.ConditionBaru),
		SepertiOn: f.HasCondition(models.ConditionSepertiBaru),
		BekasOn:   f.HasCondition(models.ConditionBekas),
	}
	if f.MinPrice != nil {
		vm.MinPrice = strconv.FormatInt(*f.MinPrice, 10)
	}
	if f.MaxPrice != nil {
		vm.MaxPrice = strconv.FormatInt(*f.MaxPrice, 10)
	}
	return vm
}

func canManage(st models.AppState, l models.Listing) bool {
	if st.CurrentUser == nil {
		return false
	}
	return st.CurrentUser.IsAdmin || st.CurrentUser.NIM == l.SellerID
}
