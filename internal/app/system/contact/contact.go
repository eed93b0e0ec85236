// Package contact builds the WhatsApp deep links used to reach a seller.
package contact

import "net/url"

// WhatsAppURL returns a wa.me link for the seller's phone number carrying a
// templated opening message that names the listing. The phone is expected in
// international form without a plus (e.g. 6281234567000).
func WhatsAppURL(phone, listingTitle string) string {
	msg := "Halo, saya tertarik dengan produk '" + listingTitle + "' di Pasar UNSRI."
	return "https://wa.me/" + url.PathEscape(phone) + "?text=" + url.QueryEscape(msg)
}
