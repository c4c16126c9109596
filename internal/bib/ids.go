package bib

import "strings"

// keySuffix spells n in bijective base 26: 1 is "a", 26 is "z", 27 is
// "aa". Suffixes therefore enumerate a, b, ..., z, aa, ab, ... in order.
func keySuffix(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append(b, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// NewID generates a fresh citation key from a surname stem and a year.
// Years longer than two digits keep only their last two. Every generated
// key carries a suffix, starting at "a", so imported entries never shadow
// a hand-written "stem year" key. The chosen key is recorded in taken so
// successive calls stay distinct.
func NewID(stem, year string, taken map[string]struct{}) string {
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	base := stem + year
	for n := 1; ; n++ {
		id := base + keySuffix(n)
		if _, ok := taken[id]; !ok {
			taken[id] = struct{}{}
			return id
		}
	}
}

// CrossrefID converts a DBLP stream path to a citation key:
// "DBLP:conf/lpnmr/2019" becomes "lpnmr19". The leading segment is
// discarded, the venue kept, and the volume trimmed to its last two
// characters. ok is false unless the value has exactly three segments.
func CrossrefID(crossref string) (string, bool) {
	parts := strings.Split(crossref, "/")
	if len(parts) != 3 {
		return "", false
	}
	volume := parts[2]
	if len(volume) > 2 {
		volume = volume[len(volume)-2:]
	}
	return parts[1] + volume, true
}
