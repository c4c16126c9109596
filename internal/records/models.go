package records

import "github.com/unibib/bibtidy/internal/bib"

// flatRecord is the parquet row shape: one column per conventional
// field, empty string for absent fields. Parquet input carries plain
// literals, never abbreviation macros.
type flatRecord struct {
	ID        string `json:"id" parquet:"id"`
	Type      string `json:"type" parquet:"type"`
	Title     string `json:"title" parquet:"title"`
	Author    string `json:"author" parquet:"author"`
	Editor    string `json:"editor" parquet:"editor"`
	Year      string `json:"year" parquet:"year"`
	Journal   string `json:"journal" parquet:"journal"`
	Booktitle string `json:"booktitle" parquet:"booktitle"`
	Crossref  string `json:"crossref" parquet:"crossref"`
	Pages     string `json:"pages" parquet:"pages"`
	Volume    string `json:"volume" parquet:"volume"`
	Publisher string `json:"publisher" parquet:"publisher"`
	DOI       string `json:"doi" parquet:"doi"`
	URL       string `json:"url" parquet:"url"`
}

func (r *flatRecord) toEntry() bib.Entry {
	entry := bib.Entry{ID: r.ID, Type: r.Type}
	fields := map[string]string{
		"title":     r.Title,
		"author":    r.Author,
		"editor":    r.Editor,
		"year":      r.Year,
		"journal":   r.Journal,
		"booktitle": r.Booktitle,
		"crossref":  r.Crossref,
		"pages":     r.Pages,
		"volume":    r.Volume,
		"publisher": r.Publisher,
		"doi":       r.DOI,
		"url":       r.URL,
	}
	for name, text := range fields {
		if text != "" {
			entry.Set(name, text)
		}
	}
	return entry
}
