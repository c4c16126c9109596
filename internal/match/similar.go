// Package match decides whether bibliography entries and DBLP search
// results describe the same publication, and mines confirmed matches for
// name spelling variants.
package match

import (
	"slices"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/names"
)

// Verdict grades how strongly two entries resemble each other.
type Verdict int

const (
	NotSimilar Verdict = iota
	WeaklySimilar
	Similar
)

func (v Verdict) String() string {
	switch v {
	case Similar:
		return "similar"
	case WeaklySimilar:
		return "weakly similar"
	default:
		return "not similar"
	}
}

// NormalizeName reduces a raw name to its comparison form: the name is
// split leniently, the first name cut down to its initial, and every
// word stripped to lowercase alphanumerics.
func NormalizeName(raw string) names.Name {
	n := names.SplitLenient(raw)
	if len(n.First) > 0 && n.First[0] != "" {
		r := []rune(n.First[0])
		n.First = []string{string(r[0]) + "."}
	}
	n.First = normalizeWords(n.First)
	n.Von = normalizeWords(n.Von)
	n.Last = normalizeWords(n.Last)
	n.Jr = normalizeWords(n.Jr)
	return n
}

func normalizeWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = bib.AlphaNumericLower(w)
	}
	return out
}

// EqualNames reports whether two raw names normalize identically.
func EqualNames(a, b string) bool {
	return equalNames(NormalizeName(a), NormalizeName(b))
}

func equalNames(a, b names.Name) bool {
	return slices.Equal(a.First, b.First) &&
		slices.Equal(a.Von, b.Von) &&
		slices.Equal(a.Last, b.Last) &&
		slices.Equal(a.Jr, b.Jr)
}

// NameSimilar reports whether two raw names plausibly denote the same
// person. Normalization-identical names always match. Otherwise names
// whose first initials both exist and differ never match, and the
// shorter surname must equal a trailing word run of the longer one, so
// "Juan Carlos Nieves" stays similar to "J. Nieves".
func NameSimilar(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if equalNames(na, nb) {
		return true
	}
	if len(na.First) > 0 && len(nb.First) > 0 && !slices.Equal(na.First, nb.First) {
		return false
	}
	short, long := na.Last, nb.Last
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return len(long) == 0
	}
	return slices.Equal(short, long[len(long)-len(short):])
}

// VenueLookup resolves a venue key, a journal title or abbreviation
// macro, to its canonical identifier.
type VenueLookup interface {
	Lookup(key string) (string, bool)
}

// Options tune entry comparison.
type Options struct {
	// Venues enables the venue gate: when both entries expose a venue
	// and the venues disagree, the entries never match.
	Venues VenueLookup

	// Aliases maps known spelling variants on the candidate side to
	// their curated form before names are compared.
	Aliases map[string]string
}

// EntrySimilarity grades whether two entries describe the same
// publication. Entry type, normalized title, and year must agree
// exactly, and the venues must not contradict each other. Author lists
// of equal length then decide the verdict: all pairs identical under
// normalization is Similar, all pairs at least name-similar is
// WeaklySimilar, anything less is NotSimilar.
func EntrySimilarity(a, b *bib.Entry, opts Options) Verdict {
	if a.Type == "" || a.Type != b.Type {
		return NotSimilar
	}
	titleA, titleB := a.Text("title"), b.Text("title")
	if titleA == "" || titleB == "" {
		return NotSimilar
	}
	if bib.AlphaNumericLower(titleA) != bib.AlphaNumericLower(titleB) {
		return NotSimilar
	}
	yearA := a.Text("year")
	if yearA == "" || yearA != b.Text("year") {
		return NotSimilar
	}
	if opts.Venues != nil {
		va, vb := venueKey(a, opts.Venues), venueKey(b, opts.Venues)
		if va != "" && vb != "" && va != vb {
			return NotSimilar
		}
	}

	authorsA, authorsB := a.Text("author"), b.Text("author")
	if authorsA == "" || authorsB == "" {
		return NotSimilar
	}
	listA, listB := names.SplitList(authorsA), names.SplitList(authorsB)
	if len(listA) != len(listB) {
		return NotSimilar
	}

	identical := true
	for i := range listA {
		ours, theirs := listA[i], applyAlias(opts.Aliases, listB[i])
		if EqualNames(ours, theirs) {
			continue
		}
		identical = false
		if !NameSimilar(ours, theirs) {
			return NotSimilar
		}
	}
	if identical {
		return Similar
	}
	return WeaklySimilar
}

// venueKey extracts an entry's comparable venue identifier: the journal
// resolved through the lookup, or the conference stem of a crossref key.
// Entries without either report an empty key and pass the venue gate.
func venueKey(e *bib.Entry, venues VenueLookup) string {
	if v, ok := e.Fields["journal"]; ok {
		if canonical, ok := venues.Lookup(v.Text); ok {
			return bib.AlphaNumericLower(canonical)
		}
		return bib.AlphaNumericLower(v.Text)
	}
	if ref := e.Text("crossref"); ref != "" {
		if id, ok := bib.CrossrefID(ref); ok {
			ref = id
		}
		if k, ok := bib.ParseKey(ref); ok {
			return strings.ToLower(k.Stem)
		}
	}
	return ""
}

func applyAlias(aliases map[string]string, raw string) string {
	if alias, ok := aliases[raw]; ok {
		return alias
	}
	return raw
}
