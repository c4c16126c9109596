package match

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/names"
	"github.com/unibib/bibtidy/internal/tables"
)

// RawMatches groups DBLP search results by the entry whose search
// produced them. Result keys follow the "sourceID$index$dblpKey"
// convention, so the segment before the first separator names the
// source entry. Hits for unknown sources are dropped.
func RawMatches(db, dblpDB *bib.Database) map[string][]bib.Entry {
	matches := make(map[string][]bib.Entry, len(db.Entries))
	for i := range db.Entries {
		matches[db.Entries[i].ID] = nil
	}
	for _, entry := range dblpDB.Entries {
		source, _, _ := strings.Cut(entry.ID, "$")
		if _, ok := matches[source]; !ok {
			continue
		}
		matches[source] = append(matches[source], entry)
	}
	return matches
}

// FindSimilar grades every entry's raw search results and groups the
// result keys by verdict. Keys land in similar when the entries agree
// under normalization and in weak when the author lists only align
// under name similarity; entries with no graded results appear in
// neither map.
func FindSimilar(db, dblpDB *bib.Database, opts Options) (similar, weak map[string][]string) {
	raw := RawMatches(db, dblpDB)
	index := db.Index()

	similar = make(map[string][]string)
	weak = make(map[string][]string)
	for id, hits := range raw {
		entry := index[id]
		for i := range hits {
			switch EntrySimilarity(entry, &hits[i], opts) {
			case Similar:
				similar[id] = append(similar[id], hits[i].ID)
			case WeaklySimilar:
				weak[id] = append(weak[id], hits[i].ID)
			}
		}
	}
	return similar, weak
}

// Matcher pairs bibliography entries with their DBLP counterparts using
// the curated formatting rules for name comparison.
type Matcher struct {
	Formatter names.Formatter
}

// NewMatcher builds a matcher from the curated tables.
func NewMatcher(t *tables.Tables) *Matcher {
	return &Matcher{Formatter: t.NewFormatter()}
}

// MatchEntries pairs conference entries with DBLP results. An entry
// qualifies when it carries both an editor and a crossref with a
// parseable conference stem; a result qualifies when it is an
// inproceedings with the same normalized title, a DBLP key citing the
// same conference, and the same formatted author list. Entries with
// more than one surviving candidate are discarded as ambiguous. The
// returned map goes from citation key to the matched result key.
func (m *Matcher) MatchEntries(db, dblpDB *bib.Database) (map[string]string, error) {
	raw := RawMatches(db, dblpDB)
	index := db.Index()

	candidates := make(map[string][]string)
	for id, hits := range raw {
		entry := index[id]
		if entry.Text("editor") == "" || entry.Text("crossref") == "" {
			continue
		}
		key, ok := bib.ParseKey(entry.Text("crossref"))
		if !ok {
			continue
		}
		author := entry.Text("author")
		if author == "" {
			continue
		}
		ours, err := m.simplifiedNames(author)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", id, err)
		}
		title := bib.AlphaNumericLower(entry.Text("title"))

		for i := range hits {
			hit := &hits[i]
			if hit.Type != "inproceedings" {
				continue
			}
			if title != bib.AlphaNumericLower(hit.Text("title")) {
				continue
			}
			conference, ok := hitConferenceID(hit.ID)
			if !ok || conference != key.Stem {
				continue
			}
			theirs, err := m.simplifiedNames(hit.Text("author"))
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w", hit.ID, err)
			}
			if !slices.Equal(ours, theirs) {
				continue
			}
			candidates[id] = append(candidates[id], hit.ID)
		}
	}

	matches := make(map[string]string, len(candidates))
	for id, hits := range candidates {
		if len(hits) > 1 {
			slog.Warn("discarding ambiguous match", "id", id, "candidates", len(hits))
			continue
		}
		matches[id] = hits[0]
	}
	return matches, nil
}

// simplifiedNames formats each name of a list and strips it to
// lowercase alphanumerics, the form author lists are compared under.
func (m *Matcher) simplifiedNames(field string) ([]string, error) {
	raws := names.SplitList(field)
	out := make([]string, len(raws))
	for i, raw := range raws {
		list, err := m.Formatter.FormatList(raw)
		if err != nil {
			return nil, err
		}
		out[i] = bib.AlphaNumericLower(list.Formatted)
	}
	return out, nil
}

// hitConferenceID pulls the conference stem out of a composite result
// key: "gel19a$0$conf/lpnmr/GelfondL19" yields "lpnmr".
func hitConferenceID(composite string) (string, bool) {
	parts := strings.Split(composite, "$")
	if len(parts) < 3 {
		return "", false
	}
	path := strings.Split(parts[2], "/")
	if len(path) < 2 {
		return "", false
	}
	return path[1], true
}

// EditorAliases mines matched entry pairs for editor spelling variants.
// For every pair whose editor lists align name by name, editors that
// are similar but not normalization-identical are counted as candidate
// aliases, keyed by the DBLP spelling and then the curated spelling.
// The counts seed the grouping and reviewed-name tables.
func EditorAliases(db, dblpDB *bib.Database, matches map[string]string) map[string]map[string]int {
	index := db.Index()
	dblpIndex := dblpDB.Index()

	aliases := make(map[string]map[string]int)
	for id, dblpID := range matches {
		entry, ok := index[id]
		if !ok {
			continue
		}
		hit, ok := dblpIndex[dblpID]
		if !ok {
			continue
		}
		ours, theirs := entry.Text("editor"), hit.Text("editor")
		if ours == "" || theirs == "" {
			continue
		}
		ourEditors, hitEditors := names.SplitList(ours), names.SplitList(theirs)
		if len(ourEditors) != len(hitEditors) {
			continue
		}
		aligned := true
		for i := range ourEditors {
			if !NameSimilar(ourEditors[i], hitEditors[i]) {
				aligned = false
				break
			}
		}
		if !aligned {
			continue
		}
		for i := range ourEditors {
			if EqualNames(ourEditors[i], hitEditors[i]) {
				continue
			}
			if aliases[hitEditors[i]] == nil {
				aliases[hitEditors[i]] = make(map[string]int)
			}
			aliases[hitEditors[i]][ourEditors[i]]++
		}
	}
	return aliases
}
