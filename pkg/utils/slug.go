package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// DeriveSlug builds the canonical plan key for a destination and day count.
// Equal (destination, days) pairs under case/whitespace-insensitive comparison
// always map to the same slug.
func DeriveSlug(destination string, days int) string {
	return slugify(fmt.Sprintf("%s-tour-%d-days", destination, days))
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		// Runs of spaces and punctuation fold into a single separator.
		pendingSep = true
	}
	return b.String()
}
