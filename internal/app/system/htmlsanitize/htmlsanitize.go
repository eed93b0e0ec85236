// Package htmlsanitize cleans user-generated markup before it is rendered.
// Listing descriptions arrive as free text from the create/edit forms;
// anything that reaches a template as template.HTML goes through here.
package htmlsanitize

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the shared sanitization policy: the standard user-generated
// content allowlist plus tables (with class/colspan/rowspan) and the common
// inline formatting tags.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	return p
}

// Sanitize strips unsafe elements and attributes, keeping the safe subset
// intact. Plain text passes through unchanged.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and returns the result as template.HTML so it
// can be embedded without re-escaping.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}

var tagRE = regexp.MustCompile(`<[^>]+>`)

// IsPlainText reports whether s contains no HTML tags. Bare < or >
// characters (e.g. "5 < 10") still count as plain text.
func IsPlainText(s string) bool {
	return !tagRE.MatchString(s)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// PlainTextToHTML escapes plain text and converts it to a single paragraph
// with newlines rendered as <br>. Empty input yields empty output.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := htmlEscaper.Replace(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders stored text for a template: plain text is
// escaped and paragraph-wrapped, markup is sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
