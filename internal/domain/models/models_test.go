package models_test

import (
	"testing"

	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

func TestCategoryValid(t *testing.T) {
	tests := []struct {
		in   models.Category
		want bool
	}{
		{models.CategoryBuku, true},
		{models.CategoryElektronik, true},
		{models.CategoryJasa, true},
		{models.CategoryKost, true},
		{models.CategoryMakanan, true},
		{models.Category("Furnitur"), false},
		{models.Category(""), false},
		{models.Category("buku"), false},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("Category(%q).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConditionValid(t *testing.T) {
	tests := []struct {
		in   models.Condition
		want bool
	}{
		{models.ConditionBaru, true},
		{models.ConditionSepertiBaru, true},
		{models.ConditionBekas, true},
		{models.Condition("Rusak"), false},
		{models.Condition(""), false},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("Condition(%q).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidFaculty(t *testing.T) {
	if !models.ValidFaculty("FASILKOM") {
		t.Error("FASILKOM should be a valid faculty")
	}
	if models.ValidFaculty("fasilkom") {
		t.Error("faculty match is case-sensitive")
	}
	if models.ValidFaculty("") {
		t.Error("empty faculty is not valid")
	}
}

func TestFindUserByEmail_CaseInsensitive(t *testing.T) {
	users := []models.User{
		{Name: "Andi Pratama", NIM: "09011282328000", Email: "andipratama@unsri.ac.id"},
		{Name: "Citra Lestari", NIM: "09011282328001", Email: "citralestari@unsri.ac.id"},
	}

	got := models.FindUserByEmail(users, "CitraLestari@UNSRI.ac.id")
	if got == nil || got.NIM != "09011282328001" {
		t.Fatalf("expected Citra Lestari, got %+v", got)
	}
	if models.FindUserByEmail(users, "nobody@unsri.ac.id") != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestFindListingByID(t *testing.T) {
	listings := []models.Listing{{ID: 1}, {ID: 2}, {ID: 3}}
	if got := models.FindListingByID(listings, 2); got == nil || got.ID != 2 {
		t.Fatalf("expected listing 2, got %+v", got)
	}
	if models.FindListingByID(listings, 99) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestUserSnapshot(t *testing.T) {
	u := models.User{
		Name:       "Budi Santoso",
		NIM:        "09011282328002",
		Email:      "budisantoso@unsri.ac.id",
		Password:   "password123",
		Faculty:    "FE",
		IsVerified: true,
	}
	s := u.Snapshot()
	if s.Name != u.Name || s.Faculty != u.Faculty || !s.IsVerified {
		t.Errorf("snapshot mismatch: %+v", s)
	}
}

func TestDocumentNormalize_DefaultsLocation(t *testing.T) {
	doc := models.Document{
		Listings: []models.Listing{
			{ID: 1},
			{ID: 2, Location: models.LocationBukit},
		},
	}
	doc.Normalize()

	if doc.Listings[0].Location != models.LocationIndralaya {
		t.Errorf("missing location should default to Indralaya, got %q", doc.Listings[0].Location)
	}
	if doc.Listings[1].Location != models.LocationBukit {
		t.Errorf("existing location should be preserved, got %q", doc.Listings[1].Location)
	}
}

func TestDocumentClone_Isolated(t *testing.T) {
	doc := models.Document{
		Users:    []models.User{{NIM: "09011282328000", Name: "Andi Pratama"}},
		Listings: []models.Listing{{ID: 1, Title: "Kalkulus"}},
	}
	clone := doc.Clone()

	clone.Users[0].Name = "Changed"
	clone.Listings[0].Title = "Changed"

	if doc.Users[0].Name != "Andi Pratama" {
		t.Error("clone mutation leaked into original users")
	}
	if doc.Listings[0].Title != "Kalkulus" {
		t.Error("clone mutation leaked into original listings")
	}
}

func TestFilterHasConstraints(t *testing.T) {
	min := int64(10000)

	tests := []struct {
		name string
		f    models.Filter
		want bool
	}{
		{"empty", models.Filter{}, false},
		{"query only", models.Filter{Query: "laptop"}, false},
		{"faculty", models.Filter{Faculty: "FT"}, true},
		{"location", models.Filter{Location: models.LocationBukit}, true},
		{"category", models.Filter{Category: models.CategoryBuku}, true},
		{"conditions", models.Filter{Conditions: []models.Condition{models.ConditionBaru}}, true},
		{"min price", models.Filter{MinPrice: &min}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.HasConstraints(); got != tt.want {
				t.Errorf("HasConstraints() = %v, want %v", got, tt.want)
			}
		})
	}
}
