package bib

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^0-9a-zA-Z]+`)

// AlphaNumericLower lowercases a string and strips everything that is not
// a letter or digit. Titles and names compare under this normalization so
// that punctuation and LaTeX markup differences do not matter.
func AlphaNumericLower(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "")
}

var keyPattern = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)([a-zA-Z]*)`)

// Key is a citation key split into its conventional parts: a surname or
// venue stem, a year, and a disambiguating suffix, as in "gellif88a" or
// "lpnmr19".
type Key struct {
	Stem   string
	Year   string
	Suffix string
}

// Base returns the key without its suffix.
func (k Key) Base() string {
	return k.Stem + k.Year
}

// ParseKey splits a citation key of the stem-year-suffix form. Keys that
// do not open with letters followed by digits report ok false; generated
// markers like "DBLP:..." and "REPEATED:..." fall in that bucket.
func ParseKey(id string) (Key, bool) {
	m := keyPattern.FindStringSubmatch(id)
	if m == nil {
		return Key{}, false
	}
	return Key{Stem: m[1], Year: m[2], Suffix: m[3]}, true
}
