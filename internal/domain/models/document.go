// internal/domain/models/document.go
package models

// Document is the whole persisted dataset: the unit of every load and save.
// There is no partial update; writers send the entire document and the last
// write wins.
type Document struct {
	Users    []User    `bson:"users" json:"users"`
	Listings []Listing `bson:"listings" json:"listings"`
}

// Normalize fills defaults for fields that older stored documents predate.
// Missing location defaults to Indralaya; isFlagged and isAdmin already
// decode to false.
func (d *Document) Normalize() {
	for i := range d.Listings {
		if d.Listings[i].Location == "" {
			d.Listings[i].Location = LocationIndralaya
		}
	}
}

// Clone returns a deep copy. Save snapshots use it so in-flight writes are
// isolated from later state mutations.
func (d Document) Clone() Document {
	out := Document{}
	if d.Users != nil {
		out.Users = make([]User, len(d.Users))
		copy(out.Users, d.Users)
	}
	if d.Listings != nil {
		out.Listings = make([]Listing, len(d.Listings))
		copy(out.Listings, d.Listings)
	}
	return out
}
