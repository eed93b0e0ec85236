// Package format renders prices and dates the way the Indonesian locale
// presents them (id-ID): "Rp150.000" and "20 Mei 2024".
package format

import (
	"strconv"
	"time"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Rupiah formats a whole-rupiah amount with dot thousand separators and the
// Rp prefix, no fraction digits.
func Rupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "-Rp" + string(out)
	}
	return "Rp" + string(out)
}

// Date formats a YYYY-MM-DD date string as an Indonesian long date
// ("20 Mei 2024"). Unparseable input is returned unchanged so a malformed
// stored date degrades to its raw form instead of breaking the page.
func Date(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return strconv.Itoa(t.Day()) + " " + indonesianMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// Today returns the current date in the YYYY-MM-DD form listings store.
func Today() string {
	return time.Now().Format("2006-01-02")
}
