// Package tables holds the hand-maintained configuration steering the
// bibliography pipeline: citation keys to leave untouched, names that
// must never be split or abbreviated, and the journal abbreviation
// mapping. The tables ship with built-in defaults and can be replaced or
// extended from a YAML file.
package tables

import (
	"strings"

	"github.com/unibib/bibtidy/internal/names"
)

// ReviewedName is one structured name in the curated tables, each part
// written as a single space-joined string.
type ReviewedName struct {
	First string `yaml:"first"`
	Von   string `yaml:"von,omitempty"`
	Last  string `yaml:"last"`
	Jr    string `yaml:"jr,omitempty"`
}

// Tuple returns the name as a comparison tuple.
func (r ReviewedName) Tuple() names.Tuple {
	return names.Tuple{r.First, r.Von, r.Last, r.Jr}
}

// Name expands the space-joined parts back into word lists.
func (r ReviewedName) Name() names.Name {
	return names.Name{
		First: strings.Fields(r.First),
		Von:   strings.Fields(r.Von),
		Last:  strings.Fields(r.Last),
		Jr:    strings.Fields(r.Jr),
	}
}

// Tables is the curated configuration set.
type Tables struct {
	// ExcludeIDs lists citation keys the formatter must not touch.
	ExcludeIDs []string `yaml:"exclude_ids,omitempty"`

	// WholeNames lists author strings that are single names even though
	// they contain separators, such as corporate authors.
	WholeNames []string `yaml:"whole_names,omitempty"`

	// ReviewedNames lists split names whose first names have been
	// reviewed and must not be abbreviated further.
	ReviewedNames []ReviewedName `yaml:"reviewed_names,omitempty"`

	// Groupings maps raw name strings to hand-assigned parts for names
	// the splitting heuristic gets wrong.
	Groupings map[string]ReviewedName `yaml:"groupings,omitempty"`

	// Journals maps full journal titles to abbreviation macro names.
	Journals map[string]string `yaml:"journals,omitempty"`

	// SkipJournals lists macro names to leave alone during journal
	// discovery even though the journal mapping does not produce them.
	SkipJournals []string `yaml:"skip_journals,omitempty"`
}

// ExcludeSet returns the untouchable citation keys as a set.
func (t *Tables) ExcludeSet() map[string]struct{} {
	return stringSet(t.ExcludeIDs)
}

// WholeNameSet returns the never-split author strings as a set.
func (t *Tables) WholeNameSet() map[string]struct{} {
	return stringSet(t.WholeNames)
}

// ReviewedSet returns the reviewed name tuples as a set.
func (t *Tables) ReviewedSet() map[names.Tuple]struct{} {
	set := make(map[names.Tuple]struct{}, len(t.ReviewedNames))
	for _, r := range t.ReviewedNames {
		set[r.Tuple()] = struct{}{}
	}
	return set
}

// GroupingNames returns the hand-assigned name presets keyed by their
// whitespace-normalized raw string.
func (t *Tables) GroupingNames() map[string]names.Name {
	groups := make(map[string]names.Name, len(t.Groupings))
	for raw, r := range t.Groupings {
		groups[strings.Join(strings.Fields(raw), " ")] = r.Name()
	}
	return groups
}

// JournalMacro looks up the abbreviation macro for a full journal title.
func (t *Tables) JournalMacro(title string) (string, bool) {
	macro, ok := t.Journals[title]
	return macro, ok
}

// ProcessedJournals returns the macro names that journal discovery must
// skip: every mapped abbreviation plus the explicit skip list.
func (t *Tables) ProcessedJournals() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Journals)+len(t.SkipJournals))
	for _, macro := range t.Journals {
		set[macro] = struct{}{}
	}
	for _, macro := range t.SkipJournals {
		set[macro] = struct{}{}
	}
	return set
}

// NewSplitter returns a strict name splitter honoring the grouping
// presets.
func (t *Tables) NewSplitter() names.Splitter {
	return names.Splitter{Strict: true, Groups: t.GroupingNames()}
}

// NewFormatter returns a name-list formatter honoring the whole-name and
// reviewed-name tables.
func (t *Tables) NewFormatter() names.Formatter {
	return names.Formatter{
		Splitter:   t.NewSplitter(),
		WholeNames: t.WholeNameSet(),
		Reviewed:   t.ReviewedSet(),
	}
}

// JournalLookup adapts the journal table to the venue lookup interface
// the matcher consumes: it resolves a venue key, either a full journal
// title or an abbreviation macro, to the macro name.
type JournalLookup struct {
	Tables *Tables
}

// Lookup returns the macro name for a venue key.
func (l JournalLookup) Lookup(key string) (string, bool) {
	if macro, ok := l.Tables.Journals[key]; ok {
		return macro, true
	}
	for _, macro := range l.Tables.Journals {
		if macro == key {
			return key, true
		}
	}
	return "", false
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
