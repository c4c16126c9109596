package cleanup

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/names"
	"github.com/unibib/bibtidy/internal/tables"
)

// Report collects what a formatting run changed: the citation keys of
// touched entries and the name tuples whose first names were abbreviated
// without a curated table knowing about them. Its content seeds review
// sessions that grow the tables.
type Report struct {
	ids    map[string]struct{}
	people map[names.Tuple]struct{}
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{
		ids:    make(map[string]struct{}),
		people: make(map[names.Tuple]struct{}),
	}
}

func (r *Report) addID(id string) {
	r.ids[id] = struct{}{}
}

func (r *Report) addPeople(people []names.Tuple) {
	for _, p := range people {
		r.people[p] = struct{}{}
	}
}

// ModifiedIDs returns the touched citation keys in sorted order.
func (r *Report) ModifiedIDs() []string {
	ids := make([]string, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ModifiedPeople returns the abbreviated name tuples in sorted order.
func (r *Report) ModifiedPeople() []names.Tuple {
	people := make([]names.Tuple, 0, len(r.people))
	for p := range r.people {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool {
		for k := range people[i] {
			if people[i][k] != people[j][k] {
				return people[i][k] < people[j][k]
			}
		}
		return false
	})
	return people
}

// Empty reports whether the run changed nothing.
func (r *Report) Empty() bool {
	return len(r.ids) == 0 && len(r.people) == 0
}

// Formatter canonicalizes entries according to the curated tables.
type Formatter struct {
	tables  *tables.Tables
	names   names.Formatter
	exclude map[string]struct{}
}

// NewFormatter builds a formatter from the curated tables.
func NewFormatter(t *tables.Tables) *Formatter {
	return &Formatter{
		tables:  t,
		names:   t.NewFormatter(),
		exclude: t.ExcludeSet(),
	}
}

// FormatEntry returns a canonicalized copy of an entry: noise fields
// dropped, author and editor lists formatted, imported "DBLP:" keys
// replaced with generated surname keys, known journals abbreviated to
// macros, and DBLP crossref values resolved against the proceedings
// index. The returned tuples are the names whose first names were
// abbreviated without being covered by a curated table.
func (f *Formatter) FormatEntry(entry *bib.Entry, existing map[string]struct{}, procs map[string]*bib.Entry) (bib.Entry, []names.Tuple, error) {
	result := entry.Clone()
	for _, field := range noiseFields {
		delete(result.Fields, field)
	}

	var people []names.Tuple
	if author := result.Text("author"); author != "" {
		list, err := f.names.FormatList(author)
		if err != nil {
			return bib.Entry{}, nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		result.Set("author", list.Formatted)
		people = append(people, list.Modified...)
		if list.BaseKey != "" && strings.HasPrefix(result.ID, "DBLP:") {
			if year := entry.Text("year"); year != "" {
				result.ID = bib.NewID(list.BaseKey, year, existing)
			}
		}
	}

	if editor := result.Text("editor"); editor != "" {
		list, err := f.names.FormatList(editor)
		if err != nil {
			return bib.Entry{}, nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		result.Set("editor", list.Formatted)
		people = append(people, list.Modified...)
	}

	if journal, ok := result.Fields["journal"]; ok && !journal.Macro {
		if macro, ok := f.tables.JournalMacro(journal.Text); ok {
			result.Fields["journal"] = bib.MacroRef(macro)
		}
	}

	if procs != nil && strings.EqualFold(result.Type, "inproceedings") {
		if ref := result.Text("crossref"); strings.HasPrefix(ref, "DBLP:") {
			if id, ok := bib.CrossrefID(ref); ok {
				if _, found := procs[id]; found {
					result.Set("crossref", id)
					delete(result.Fields, "booktitle")
					delete(result.Fields, "year")
				}
			}
		}
	}

	return result, people, nil
}

// FormatDatabase canonicalizes every entry of a database in place,
// accumulating changes into the report. Entries on the exclude list stay
// untouched. When a proceedings database is given, freshly imported
// entries that duplicate an existing entry or volume get their key
// replaced with a "REPEATED:" marker pointing at the surviving key.
func (f *Formatter) FormatDatabase(db *bib.Database, procs *bib.Database, report *Report) error {
	existing := db.IDSet()

	var procsIndex map[string]*bib.Entry
	var buckets map[string][]*bib.Entry
	if procs != nil {
		procsIndex = procs.Index()
		buckets = make(map[string][]*bib.Entry)
		for i := range db.Entries {
			if k, ok := bib.ParseKey(db.Entries[i].ID); ok {
				buckets[k.Base()] = append(buckets[k.Base()], &db.Entries[i])
			}
		}
	}

	for i := range db.Entries {
		entry := &db.Entries[i]
		if _, excluded := f.exclude[entry.ID]; excluded {
			continue
		}
		result, people, err := f.FormatEntry(entry, existing, procsIndex)
		if err != nil {
			return err
		}
		if result.Equal(entry) {
			continue
		}
		report.addID(entry.ID)
		report.addPeople(people)
		if procs != nil {
			markRepeated(entry, &result, buckets, procsIndex)
		}
		db.Entries[i] = result
	}
	return nil
}

// markRepeated rewrites the key of a freshly imported entry when the
// database already holds the same publication. Re-keyed entries are
// checked against entries sharing their stem and year; imported volumes
// are checked against the proceedings index.
func markRepeated(original, result *bib.Entry, buckets map[string][]*bib.Entry, procs map[string]*bib.Entry) {
	imported := strings.HasPrefix(original.ID, "DBLP:")
	proceedings := strings.EqualFold(original.Type, "proceedings")

	if k, ok := bib.ParseKey(result.ID); ok {
		if imported && !proceedings {
			for _, other := range buckets[k.Base()] {
				if sameTitle(result, other) {
					result.ID = "REPEATED:" + other.ID
					return
				}
			}
		}
		if proceedings {
			if _, tracked := procs[result.ID]; tracked {
				slog.Debug("proceedings volume already tracked", "id", result.ID)
			}
		}
		return
	}

	if imported && proceedings {
		if id, ok := bib.CrossrefID(original.ID); ok {
			if _, tracked := procs[id]; tracked {
				result.ID = "REPEATED:" + id
			}
		}
	}
}

func sameTitle(a, b *bib.Entry) bool {
	return bib.AlphaNumericLower(a.Text("title")) == bib.AlphaNumericLower(b.Text("title"))
}
