// internal/domain/models/user.go
package models

import "strings"

// User is a registered marketplace account. The NIM (student number) is the
// stable identity key; listings reference their seller by it.
//
// Passwords are stored and compared as plain text. That is the persistence
// contract of the deployed dataset: hashing on one side would orphan every
// account already in the stored document.
type User struct {
	Name       string `bson:"name" json:"name"`
	NIM        string `bson:"nim" json:"nim"`
	Email      string `bson:"email" json:"email"`
	Password   string `bson:"password" json:"password"`
	Faculty    string `bson:"faculty" json:"faculty"`
	Phone      string `bson:"phone" json:"phone"`
	IsVerified bool   `bson:"isVerified" json:"isVerified"`
	IsAdmin    bool   `bson:"isAdmin,omitempty" json:"isAdmin,omitempty"`
}

// Snapshot returns the denormalized seller view embedded in listings.
func (u User) Snapshot() SellerInfo {
	return SellerInfo{
		Name:       u.Name,
		Faculty:    u.Faculty,
		IsVerified: u.IsVerified,
	}
}

// Faculties lists the Universitas Sriwijaya faculties offered at
// registration and used for faculty filtering.
var Faculties = []string{
	"FASILKOM",
	"FISIP",
	"FE",
	"FT",
	"FKIP",
	"FMIPA",
	"FK",
	"FP",
	"FH",
	"FKM",
	"Pascasarjana",
}

// ValidFaculty reports whether name is one of the known faculties.
func ValidFaculty(name string) bool {
	for _, f := range Faculties {
		if f == name {
			return true
		}
	}
	return false
}

// FindUserByNIM returns the user with the given NIM, or nil.
func FindUserByNIM(users []User, nim string) *User {
	for i := range users {
		if users[i].NIM == nim {
			return &users[i]
		}
	}
	return nil
}

// FindUserByName returns the first user with the given display name, or nil.
// Seller snapshots carry only the name, so profile navigation from a listing
// resolves the owner this way.
func FindUserByName(users []User, name string) *User {
	for i := range users {
		if users[i].Name == name {
			return &users[i]
		}
	}
	return nil
}

// FindUserByEmail returns the user with the given email (case-insensitive), or nil.
func FindUserByEmail(users []User, email string) *User {
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}
