// Package inputval validates user-supplied form values before they reach
// the domain operations. Everything here is pure string checking; the
// operations own the error messaging.
package inputval

import "strings"

// Registration rules.
const (
	// CampusEmailDomain is the only email domain accepted at registration.
	CampusEmailDomain = "unsri.ac.id"

	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 10
)

// Listing rules.
const (
	MaxTitleLen       = 120
	MinDescriptionLen = 30
)

// IsValidEmail reports whether s is a structurally plausible email address:
// exactly one @, non-empty local part and domain, no whitespace, and no
// leading, trailing, or consecutive dots on either side. Single-label
// domains are accepted (useful for dev/test environments).
func IsValidEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s || strings.ContainsAny(s, " \t<>") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	local, domain := s[:at], s[at+1:]
	return dotPartsOK(local) && dotPartsOK(domain)
}

func dotPartsOK(part string) bool {
	if part == "" {
		return false
	}
	for _, seg := range strings.Split(part, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

// IsCampusEmail reports whether s is a valid address in the campus domain.
// The domain comparison is case-insensitive.
func IsCampusEmail(s string) bool {
	if !IsValidEmail(s) {
		return false
	}
	at := strings.LastIndex(s, "@")
	return strings.EqualFold(s[at+1:], CampusEmailDomain)
}

// IsValidPassword reports whether pw meets the minimum length rule. Length
// is counted in bytes, matching how the stored credential is compared.
func IsValidPassword(pw string) bool {
	return len(pw) >= MinPasswordLen
}

// IsValidTitle reports whether a listing title is non-blank and within the
// length cap.
func IsValidTitle(title string) bool {
	t := strings.TrimSpace(title)
	return t != "" && len(title) <= MaxTitleLen
}

// IsValidDescription reports whether a listing description meets the
// minimum length.
func IsValidDescription(desc string) bool {
	return len(strings.TrimSpace(desc)) >= MinDescriptionLen
}

// IsValidHTTPURL reports whether s (after trimming) is an absolute http or
// https URL with a host.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, " ") {
		return false
	}
	var rest string
	switch {
	case strings.HasPrefix(s, "http://"):
		rest = s[len("http://"):]
	case strings.HasPrefix(s, "https://"):
		rest = s[len("https://"):]
	default:
		return false
	}
	host := rest
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host = rest[:i]
	}
	return host != ""
}

// IsValidImageRef reports whether s can serve as a listing image: either an
// inline data URL or an absolute http(s) URL. Empty is allowed; listings
// without an image render a placeholder.
func IsValidImageRef(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.HasPrefix(s, "data:image/") || IsValidHTTPURL(s)
}

// IsValidPrice reports whether a listing price is positive.
func IsValidPrice(price int64) bool {
	return price > 0
}

// IsValidPriceRange reports whether optional min/max filter bounds are
// individually non-negative and mutually ordered.
func IsValidPriceRange(min, max *int64) bool {
	if min != nil && *min < 0 {
		return false
	}
	if max != nil && *max < 0 {
		return false
	}
	if min != nil && max != nil && *min > *max {
		return false
	}
	return true
}
