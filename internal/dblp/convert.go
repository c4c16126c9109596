package dblp

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
)

// Hit is one publication result from the search API.
type Hit struct {
	Key     string     `json:"key"`
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Venue   venueField `json:"venue"`
	Volume  string     `json:"volume"`
	Number  string     `json:"number"`
	Pages   string     `json:"pages"`
	Year    string     `json:"year"`
	DOI     string     `json:"doi"`
	EE      string     `json:"ee"`
	Authors authorList `json:"authors"`
}

// authorList flattens the API's nested author shape, a single object or
// an array of objects under an "author" key. Trailing four-digit
// homonym disambiguators ("Tran Cao Son 0001") are stripped.
type authorList []string

var disambiguator = regexp.MustCompile(` [0-9]{4}$`)

func (l *authorList) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Author json.RawMessage `json:"author"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	*l = nil
	if len(wrapper.Author) == 0 {
		return nil
	}

	type author struct {
		Text string `json:"text"`
	}
	var authors []author
	if wrapper.Author[0] == '[' {
		if err := json.Unmarshal(wrapper.Author, &authors); err != nil {
			return err
		}
	} else {
		var one author
		if err := json.Unmarshal(wrapper.Author, &one); err != nil {
			return err
		}
		authors = append(authors, one)
	}

	for _, a := range authors {
		*l = append(*l, disambiguator.ReplaceAllString(a.Text, ""))
	}
	return nil
}

// venueField tolerates both a plain string and an array of strings.
type venueField string

func (v *venueField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var many []string
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*v = venueField(strings.Join(many, ", "))
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*v = venueField(one)
	return nil
}

// entryTypes maps the API's publication type names to entry types.
var entryTypes = map[string]string{
	"Journal Articles":                "article",
	"Conference and Workshop Papers":  "inproceedings",
	"Editorship":                      "proceedings",
	"Books and Theses":                "book",
	"Parts in Books or Collections":   "incollection",
	"Informal and Other Publications": "misc",
	"Reference Works":                 "misc",
	"Data and Artifacts":              "misc",
}

// EntryFromHit converts a search hit into an entry keyed by the DBLP
// record, "DBLP:conf/lpnmr/GelfondL19" style. The venue lands in
// journal for articles and booktitle for collection papers; proceedings
// carry the venue in their own title already.
func EntryFromHit(hit Hit) bib.Entry {
	typ, ok := entryTypes[hit.Type]
	if !ok {
		typ = "misc"
	}
	entry := bib.Entry{ID: "DBLP:" + hit.Key, Type: typ}

	if title := strings.TrimSuffix(hit.Title, "."); title != "" {
		entry.Set("title", title)
	}
	if len(hit.Authors) > 0 {
		entry.Set("author", strings.Join(hit.Authors, " and "))
	}
	if hit.Year != "" {
		entry.Set("year", hit.Year)
	}
	if venue := string(hit.Venue); venue != "" {
		switch typ {
		case "article":
			entry.Set("journal", venue)
		case "inproceedings", "incollection":
			entry.Set("booktitle", venue)
		}
	}
	if hit.Volume != "" {
		entry.Set("volume", hit.Volume)
	}
	if hit.Number != "" {
		entry.Set("number", hit.Number)
	}
	if hit.Pages != "" {
		entry.Set("pages", hit.Pages)
	}
	if hit.DOI != "" {
		entry.Set("doi", hit.DOI)
	}
	if hit.EE != "" {
		entry.Set("url", hit.EE)
	}
	return entry
}
