// Package seed provides the deterministic fallback dataset. It backs two
// paths: the data endpoint seeds an empty store with it on first read, and a
// session engine falls back to it (degraded mode) when the initial load
// fails. Both sides must agree byte for byte, so the data lives here once.
package seed

import (
	"fmt"

	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// rawListing is the authoring shape: seller identity is carried by the
// embedded snapshot and resolved to a generated user at build time.
type rawListing struct {
	id          int64
	title       string
	price       int64
	category    models.Category
	condition   models.Condition
	imageURL    string
	seller      models.SellerInfo
	description string
	dateListed  string
	location    models.Location
}

var rawListings = []rawListing{
	{
		id: 1, title: "Buku Kalkulus Lanjut Edisi 3 - Mulus", price: 150000,
		category: models.CategoryBuku, condition: models.ConditionSepertiBaru,
		imageURL: "https://picsum.photos/seed/kalkulus/400/300",
		seller:   models.SellerInfo{Name: "Andi Pratama", Faculty: "FASILKOM", IsVerified: true},
		description: "Buku kalkulus edisi ketiga, kondisi sangat baik seperti baru, tidak ada coretan. " +
			"Cocok untuk mahasiswa semester awal. Bonus sampul plastik.",
		dateListed: "2024-05-20", location: models.LocationBukit,
	},
	{
		id: 2, title: "Jasa Desain Grafis (Poster, Logo)", price: 200000,
		category: models.CategoryJasa, condition: models.ConditionBaru,
		imageURL: "https://picsum.photos/seed/desain/400/300",
		seller:   models.SellerInfo{Name: "Citra Lestari", Faculty: "FISIP", IsVerified: true},
		description: "Menerima jasa desain grafis untuk keperluan acara, tugas, atau bisnis. " +
			"Pengerjaan cepat dan bisa revisi. Hubungi untuk portofolio.",
		dateListed: "2024-05-19", location: models.LocationBukit,
	},
	{
		id: 3, title: "Disewakan Kamar Kost Dekat Unsri Bukit", price: 800000,
		category: models.CategoryKost, condition: models.ConditionBaru,
		imageURL: "https://picsum.photos/seed/kost/400/300",
		seller:   models.SellerInfo{Name: "Budi Santoso", Faculty: "FE", IsVerified: false},
		description: "Kamar kost nyaman, fasilitas lengkap (AC, kamar mandi dalam, kasur, lemari). " +
			"Lokasi strategis hanya 5 menit dari kampus Unsri Bukit Besar.",
		dateListed: "2024-05-18", location: models.LocationBukit,
	},
	{
		id: 4, title: "Mouse Gaming Logitech G102", price: 250000,
		category: models.CategoryElektronik, condition: models.ConditionBekas,
		imageURL: "https://picsum.photos/seed/mouse/400/300",
		seller:   models.SellerInfo{Name: "Rina Wijaya", Faculty: "FT", IsVerified: true},
		description: "Mouse gaming second, pemakaian 6 bulan, kondisi 95% normal, klik empuk, RGB nyala. " +
			"Alasan jual karena sudah upgrade.",
		dateListed: "2024-05-21", location: models.LocationIndralaya,
	},
	{
		id: 5, title: "Jasa Mogging", price: 1800000,
		category: models.CategoryJasa, condition: models.ConditionBekas,
		imageURL: "https://banobagi.vn/wp-content/uploads/2025/04/mewing-meme-3.jpeg",
		seller:   models.SellerInfo{Name: "Sang Sigma", Faculty: "FASILKOM", IsVerified: true},
		description: "Jasa mogging gyatt skibidid toilet, sekali mogging langsung kena fanum tax " +
			"sperti kai cenat, karkirkurkarkarkarkurkurkur",
		dateListed: "2024-05-22", location: models.LocationIndralaya,
	},
	{
		id: 6, title: "Konversi Diri ke FentDroid", price: 5000000,
		category: models.CategoryJasa, condition: models.ConditionBaru,
		imageURL: "https://images.steamusercontent.com/ugc/2466374324924611315/03FCDCE18AB53C6BA1445CFAB9F0362410119A6F/?imw=512&&ima=fit&impolicy=Letterbox&imcolor=%23000000&letterbox=false",
		seller:   models.SellerInfo{Name: "Cyber Fentworks", Faculty: "FT", IsVerified: true},
		description: "Jadilah sang pejuang cyberfent tanpa resiko terkena penyakit cyberpsychosis, " +
			"100% no scam for real for real",
		dateListed: "2024-05-23", location: models.LocationBukit,
	},
}

// Users builds one account per distinct seller, in first-appearance order.
// Index n yields NIM 09011282328NNN, phone 6281234567NNN, and an
// @unsri.ac.id address derived from the lowercased name without spaces.
func Users() []models.User {
	var users []models.User
	seen := map[string]bool{}
	for _, rl := range rawListings {
		if seen[rl.seller.Name] {
			continue
		}
		seen[rl.seller.Name] = true
		n := len(users)
		users = append(users, models.User{
			Name:       rl.seller.Name,
			NIM:        fmt.Sprintf("09011282328%03d", n),
			Email:      emailFor(rl.seller.Name),
			Password:   "password123",
			Faculty:    rl.seller.Faculty,
			Phone:      fmt.Sprintf("6281234567%03d", n),
			IsVerified: rl.seller.IsVerified,
			IsAdmin:    false,
		})
	}
	return users
}

// Listings builds the seed listings with seller ids resolved against Users.
func Listings() []models.Listing {
	users := Users()
	listings := make([]models.Listing, 0, len(rawListings))
	for _, rl := range rawListings {
		seller := models.FindUserByName(users, rl.seller.Name)
		listings = append(listings, models.Listing{
			ID:          rl.id,
			SellerID:    seller.NIM,
			Title:       rl.title,
			Price:       rl.price,
			Category:    rl.category,
			Condition:   rl.condition,
			ImageURL:    rl.imageURL,
			Seller:      rl.seller,
			Description: rl.description,
			DateListed:  rl.dateListed,
			Location:    rl.location,
			IsFlagged:   false,
		})
	}
	return listings
}

// Document returns a fresh copy of the full seed dataset.
func Document() models.Document {
	return models.Document{Users: Users(), Listings: Listings()}
}

func emailFor(name string) string {
	local := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' {
			continue
		}
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		local = append(local, r)
	}
	return string(local) + "@unsri.ac.id"
}
