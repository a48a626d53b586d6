// Package slug derives URL slugs from document titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLength is the cap used by the product schema.
const DefaultMaxLength = 96

// Make lowercases s, folds accented letters to their base form, replaces each
// run of other characters with a single '-' and truncates the result to
// maxLength runes without leaving a trailing '-'. maxLength <= 0 disables the
// cap.
func Make(s string, maxLength int) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	pendingDash := false
	n := 0
	for _, r := range strings.ToLower(folded) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = n > 0
			continue
		}
		if pendingDash {
			if maxLength > 0 && n+1 >= maxLength {
				break
			}
			b.WriteByte('-')
			n++
			pendingDash = false
		}
		if maxLength > 0 && n >= maxLength {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Valid reports whether s is already in slug form: non-empty, lowercase
// letters and digits separated by single hyphens.
func Valid(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if r == '-' {
			continue
		}
		if !unicode.IsDigit(r) && !(unicode.IsLetter(r) && !unicode.IsUpper(r)) {
			return false
		}
	}
	return true
}
