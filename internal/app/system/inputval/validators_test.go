package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"budi@unsri.ac.id", true},
		{"budi.santoso@unsri.ac.id", true},
		{"budi+jual@gmail.com", true},
		{"budi@student.unsri.ac.id", true},
		{"a@b.co", true},
		{"budi@localhost", true}, // single-label domains pass for dev setups

		{"", false},
		{"   ", false},
		{"budi", false},
		{"budi@", false},
		{"@unsri.ac.id", false},

		// dot placement
		{".budi@unsri.ac.id", false},
		{"budi.@unsri.ac.id", false},
		{"budi..santoso@unsri.ac.id", false},
		{"budi@.unsri.ac.id", false},
		{"budi@unsri..ac.id", false},

		// display-name form and embedded whitespace
		{"Budi Santoso <budi@unsri.ac.id>", false},
		{"budi @unsri.ac.id", false},
		{"budi@ unsri.ac.id", false},
		{"budi@unsri. ac.id", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsCampusEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"budi@unsri.ac.id", true},
		{"budi.santoso@unsri.ac.id", true},
		{"BUDI@UNSRI.AC.ID", true}, // domain match is case-insensitive

		{"budi@gmail.com", false},
		{"budi@student.unsri.ac.id", false}, // subdomain is a different domain
		{"budi@unsri.ac.idx", false},
		{"@unsri.ac.id", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsCampusEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsCampusEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		pw   string
		want bool
	}{
		{"", false},
		{"short", false},
		{"123456789", false},  // 9 chars
		{"1234567890", true},  // exactly 10
		{"password123", true},
	}

	for _, tt := range tests {
		if got := IsValidPassword(tt.pw); got != tt.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tt.pw, got, tt.want)
		}
	}
}

func TestIsValidTitle(t *testing.T) {
	long := make([]byte, MaxTitleLen+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"normal", "Buku Kalkulus Lanjut", true},
		{"max length", string(long[:MaxTitleLen]), true},
		{"too long", string(long), false},
		{"empty", "", false},
		{"blank", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTitle(tt.title); got != tt.want {
				t.Errorf("IsValidTitle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidDescription(t *testing.T) {
	if IsValidDescription("terlalu pendek") {
		t.Error("short description should fail")
	}
	if !IsValidDescription("Deskripsi yang cukup panjang untuk memenuhi batas minimum.") {
		t.Error("long description should pass")
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},
		{"  https://example.com  ", true},

		{"", false},
		{"   ", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"not a url", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := IsValidHTTPURL(tt.url)
			if got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidImageRef(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"", true}, // optional
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"https://picsum.photos/seed/kalkulus/400/300", true},
		{"data:text/html;base64,PGh0bWw+", false},
		{"javascript:alert(1)", false},
		{"ftp://example.com/a.png", false},
	}
	for _, tt := range tests {
		if got := IsValidImageRef(tt.ref); got != tt.want {
			t.Errorf("IsValidImageRef(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestIsValidPrice(t *testing.T) {
	if IsValidPrice(0) || IsValidPrice(-1) {
		t.Error("non-positive prices should fail")
	}
	if !IsValidPrice(150000) {
		t.Error("positive price should pass")
	}
}

func TestIsValidPriceRange(t *testing.T) {
	n := func(v int64) *int64 { return &v }

	tests := []struct {
		name     string
		min, max *int64
		want     bool
	}{
		{"both nil", nil, nil, true},
		{"min only", n(1000), nil, true},
		{"max only", nil, n(5000), true},
		{"ordered", n(1000), n(5000), true},
		{"equal", n(1000), n(1000), true},
		{"inverted", n(5000), n(1000), false},
		{"negative min", n(-1), nil, false},
		{"negative max", nil, n(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPriceRange(tt.min, tt.max); got != tt.want {
				t.Errorf("IsValidPriceRange = %v, want %v", got, tt.want)
			}
		})
	}
}
