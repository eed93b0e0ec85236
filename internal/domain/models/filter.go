// internal/domain/models/filter.go
package models

// Filter holds the active browse criteria. All set criteria must match for
// a listing to be visible (conjunctive). Zero values mean "no restriction";
// price bounds are pointers because zero is a meaningful bound.
type Filter struct {
	Query      string
	Faculty    string
	Location   Location
	Category   Category
	Conditions []Condition
	MinPrice   *int64
	MaxPrice   *int64
}

// HasConstraints reports whether anything beyond the free-text query is set.
// The filter-modal badge uses this.
func (f Filter) HasConstraints() bool {
	return f.Faculty != "" || f.Location != "" || f.Category != "" ||
		len(f.Conditions) > 0 || f.MinPrice != nil || f.MaxPrice != nil
}

// HasCondition reports whether c is among the selected conditions.
func (f Filter) HasCondition(c Condition) bool {
	for _, v := range f.Conditions {
		if v == c {
			return true
		}
	}
	return false
}
