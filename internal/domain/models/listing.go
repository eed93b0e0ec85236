// internal/domain/models/listing.go
package models

// Category classifies what a listing sells.
type Category string

const (
	CategoryBuku       Category = "Buku"
	CategoryElektronik Category = "Elektronik"
	CategoryJasa       Category = "Jasa"
	CategoryKost       Category = "Kost"
	CategoryMakanan    Category = "Makanan"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryBuku,
	CategoryElektronik,
	CategoryJasa,
	CategoryKost,
	CategoryMakanan,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Condition describes the physical state of the item.
type Condition string

const (
	ConditionBaru        Condition = "Baru"
	ConditionSepertiBaru Condition = "Seperti Baru"
	ConditionBekas       Condition = "Bekas"
)

// Conditions lists every condition in display order.
var Conditions = []Condition{ConditionBaru, ConditionSepertiBaru, ConditionBekas}

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	for _, v := range Conditions {
		if c == v {
			return true
		}
	}
	return false
}

// Location is the campus where the transaction happens.
type Location string

const (
	LocationIndralaya Location = "Kampus Indralaya"
	LocationBukit     Location = "Kampus Bukit"
)

// Locations lists both campuses.
var Locations = []Location{LocationIndralaya, LocationBukit}

// Valid reports whether l is a known location.
func (l Location) Valid() bool {
	return l == LocationIndralaya || l == LocationBukit
}

// SellerInfo is the denormalized seller snapshot embedded in a listing.
// It is a point-in-time copy; profile edits fan out to refresh it.
type SellerInfo struct {
	Name       string `bson:"name" json:"name"`
	Faculty    string `bson:"faculty" json:"faculty"`
	IsVerified bool   `bson:"isVerified" json:"isVerified"`
}

// Listing is one marketplace offer. IDs are UnixMilli timestamps assigned
// at creation. DateListed is a YYYY-MM-DD calendar date string.
type Listing struct {
	ID          int64      `bson:"id" json:"id"`
	SellerID    string     `bson:"sellerId" json:"sellerId"`
	Title       string     `bson:"title" json:"title"`
	Price       int64      `bson:"price" json:"price"`
	Category    Category   `bson:"category" json:"category"`
	Condition   Condition  `bson:"condition" json:"condition"`
	ImageURL    string     `bson:"imageUrl" json:"imageUrl"`
	Seller      SellerInfo `bson:"seller" json:"seller"`
	Description string     `bson:"description" json:"description"`
	DateListed  string     `bson:"dateListed" json:"dateListed"`
	Location    Location   `bson:"location,omitempty" json:"location,omitempty"`
	IsFlagged   bool       `bson:"isFlagged,omitempty" json:"isFlagged,omitempty"`
}

// FindListingByID returns the listing with the given id, or nil.
func FindListingByID(listings []Listing, id int64) *Listing {
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i]
		}
	}
	return nil
}
