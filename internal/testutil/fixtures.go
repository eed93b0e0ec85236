// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// VerifiedUser returns a verified test account.
func VerifiedUser() models.User {
	return models.User{
		Name:       "Uji Terverifikasi",
		NIM:        "09011282328900",
		Email:      "ujiterverifikasi@unsri.ac.id",
		Password:   "password-uji",
		Faculty:    "FASILKOM",
		Phone:      "6281234567900",
		IsVerified: true,
	}
}

// UnverifiedUser returns an unverified test account.
func UnverifiedUser() models.User {
	return models.User{
		Name:     "Uji Belum Verifikasi",
		NIM:      "09011282328901",
		Email:    "ujibelum@unsri.ac.id",
		Password: "password-uji",
		Faculty:  "FE",
		Phone:    "6281234567901",
	}
}

// AdminUser returns an admin test account.
func AdminUser() models.User {
	return models.User{
		Name:       "Uji Admin",
		NIM:        "09011282328902",
		Email:      "ujiadmin@unsri.ac.id",
		Password:   "password-uji",
		Faculty:    "FASILKOM",
		Phone:      "6281234567902",
		IsVerified: true,
		IsAdmin:    true,
	}
}

// ListingFor returns a listing owned by user with the given id.
func ListingFor(user models.User, id int64) models.Listing {
	return models.Listing{
		ID:          id,
		SellerID:    user.NIM,
		Title:       "Barang Uji",
		Price:       100000,
		Category:    models.CategoryElektronik,
		Condition:   models.ConditionBekas,
		ImageURL:    "https://picsum.photos/seed/uji/400/300",
		Seller:      user.Snapshot(),
		Description: "Barang uji untuk pengujian otomatis, kondisi sesuai deskripsi.",
		DateListed:  "2024-05-20",
		Location:    models.LocationIndralaya,
	}
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}
