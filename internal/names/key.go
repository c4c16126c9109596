package names

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^0-9a-zA-Z]+`)

// SurnameKey derives a citation-key stem from a list of surnames. Each
// surname is lowercased and stripped to its alphanumeric characters; a
// single author contributes the whole surname, two authors three-letter
// prefixes, three or more two-letter prefixes. Collisions are expected
// and resolved by the caller with a disambiguating suffix.
func SurnameKey(surnames []string) string {
	var cleaned []string
	for _, s := range surnames {
		if s == "" {
			continue
		}
		cleaned = append(cleaned, nonAlphanumeric.ReplaceAllString(strings.ToLower(s), ""))
	}
	if len(cleaned) == 0 {
		return ""
	}
	if len(cleaned) == 1 {
		return cleaned[0]
	}

	// Pad so prefix slicing never runs out of characters.
	var padded []string
	for _, s := range cleaned {
		if s == "" {
			continue
		}
		padded = append(padded, s+"___")
	}
	size := 2
	if len(padded) == 2 {
		size = 3
	}
	var b strings.Builder
	for _, s := range padded {
		b.WriteString(s[:size])
	}
	return b.String()
}
