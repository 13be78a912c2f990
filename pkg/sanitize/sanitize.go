// Package sanitize neutralizes untrusted form input before it is embedded
// in outbound email. Sanitization transforms and forwards; it never
// rejects. Rejection belongs to validation.
package sanitize

import (
	"html"
	"strings"
)

// HTML escapes the characters & < > " ' so user input can be interpolated
// into the HTML rendering of an email without injecting markup.
func HTML(s string) string {
	return html.EscapeString(s)
}

// Email derives a value safe for the reply-to header slot: trimmed,
// stripped of all control characters (C0, C1 and DEL, including CR/LF used
// in header-injection attempts) and lower-cased. Distinct from HTML: the
// reply-to value must not be entity-escaped.
func Email(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	return strings.ToLower(cleaned)
}
