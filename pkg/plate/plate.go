// Package plate canonicalizes license plate text.
package plate

import "strings"

// Normalize converts raw OCR text to the canonical plate form: uppercase
// with everything outside A-Z0-9 removed. Empty input normalizes to the
// empty string. Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
