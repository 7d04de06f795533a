// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"
)

// Email trims surrounding whitespace. Emails are stored and matched exactly
// as entered; uniqueness is case-sensitive.
func Email(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role string so comparisons are uniform.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Slug derives a URL-safe identifier from a display name: lowercase, runs
// of non-alphanumeric characters collapsed to a single hyphen, no leading
// or trailing hyphen.
//
//	"Acme Clinic"          -> "acme-clinic"
//	" St. Mary's -- ER "   -> "st-mary-s-er"
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
