package cleanup

import (
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
)

// noiseFields are dropped from every entry during formatting. They are
// DBLP bookkeeping that only churns in version control.
var noiseFields = []string{
	"bibsource",
	"biburl",
	"timestamp",
}

// CleanEntry normalizes an entry's literal field values in place:
// unicode becomes LaTeX escapes, and page ranges use a single dash.
// Macro references are left alone.
func CleanEntry(entry *bib.Entry) {
	for name, v := range entry.Fields {
		if v.Macro {
			continue
		}
		text := LatexEscape(v.Text)
		if strings.EqualFold(name, "pages") {
			text = strings.ReplaceAll(text, "--", "-")
		}
		if text != v.Text {
			entry.Fields[name] = bib.Literal(text)
		}
	}
}

// CleanDatabase applies CleanEntry to every entry. Commands run it right
// after loading a database, so the rest of the pipeline only ever sees
// normalized values.
func CleanDatabase(db *bib.Database) {
	for i := range db.Entries {
		CleanEntry(&db.Entries[i])
	}
}

// Clean drops entries whose citation keys mark them as leftovers of an
// import run: duplicates marked "REPEATED:" and unconverted "DBLP:"
// keys. It reports how many entries were dropped.
func Clean(db *bib.Database) int {
	kept := db.Entries[:0]
	for _, entry := range db.Entries {
		if strings.HasPrefix(entry.ID, "REPEATED:") || strings.HasPrefix(entry.ID, "DBLP:") {
			continue
		}
		kept = append(kept, entry)
	}
	removed := len(db.Entries) - len(kept)
	db.Entries = kept
	return removed
}
