// Package listingfilter derives the visible subset of listings from the
// active filter. It is pure: no state, no mutation, input order preserved.
package listingfilter

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Visible returns the listings matching every set criterion of f, in the
// order they appear in listings. Unset criteria never exclude anything, so
// an empty filter returns the full slice content.
func Visible(listings []models.Listing, f models.Filter) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, f) {
			out = append(out, l)
		}
	}
	return out
}

// Matches reports whether a single listing passes every set criterion.
func Matches(l models.Listing, f models.Filter) bool {
	if q := text.Fold(f.Query); q != "" && !strings.Contains(text.Fold(l.Title), q) {
		return false
	}
	if f.Faculty != "" && l.Seller.Faculty != f.Faculty {
		return false
	}
	if f.Location != "" && l.Location != f.Location {
		return false
	}
	if f.Category != "" && l.Category != f.Category {
		return false
	}
	if len(f.Conditions) > 0 && !f.HasCondition(l.Condition) {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	return true
}
