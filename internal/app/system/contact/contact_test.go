package contact_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/pasarunsri/pasarhub/internal/app/system/contact"
)

func TestWhatsAppURL(t *testing.T) {
	got := contact.WhatsAppURL("6281234567000", "Buku Kalkulus Lanjut")

	if !strings.HasPrefix(got, "https://wa.me/6281234567000?text=") {
		t.Fatalf("unexpected link shape: %q", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := u.Query().Get("text")
	want := "Halo, saya tertarik dengan produk 'Buku Kalkulus Lanjut' di Pasar UNSRI."
	if text != want {
		t.Errorf("message = %q, want %q", text, want)
	}
}

func TestWhatsAppURL_EscapesTitle(t *testing.T) {
	got := contact.WhatsAppURL("628111", "Mouse & Keyboard 50%")

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := u.Query().Get("text")
	if !strings.Contains(text, "Mouse & Keyboard 50%") {
		t.Errorf("title not preserved through escaping: %q", text)
	}
}
