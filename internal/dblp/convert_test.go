package dblp

import "testing"

func TestEntryFromHitArticle(t *testing.T) {
	hit := Hit{
		Key:     "journals/ai/GelfondS91",
		Type:    "Journal Articles",
		Title:   "A Paper.",
		Venue:   "Artif. Intell.",
		Volume:  "12",
		Pages:   "1-10",
		Year:    "1991",
		DOI:     "10.1016/0004-3702(91)90002-2",
		EE:      "https://doi.org/10.1016/0004-3702(91)90002-2",
		Authors: authorList{"Michael Gelfond", "Tran Cao Son"},
	}

	entry := EntryFromHit(hit)
	if entry.ID != "DBLP:journals/ai/GelfondS91" || entry.Type != "article" {
		t.Errorf("entry = %s %s", entry.ID, entry.Type)
	}
	if got := entry.Text("title"); got != "A Paper" {
		t.Errorf("title = %q, trailing period kept?", got)
	}
	if got := entry.Text("author"); got != "Michael Gelfond and Tran Cao Son" {
		t.Errorf("author = %q", got)
	}
	if entry.Text("journal") != "Artif. Intell." || entry.Text("booktitle") != "" {
		t.Errorf("venue fields = %q / %q", entry.Text("journal"), entry.Text("booktitle"))
	}
	if entry.Text("volume") != "12" || entry.Text("pages") != "1-10" {
		t.Errorf("volume/pages = %q / %q", entry.Text("volume"), entry.Text("pages"))
	}
	if entry.Text("url") != "https://doi.org/10.1016/0004-3702(91)90002-2" {
		t.Errorf("url = %q", entry.Text("url"))
	}
}

func TestEntryFromHitConferencePaper(t *testing.T) {
	hit := Hit{
		Key:     "conf/lpnmr/Lifschitz91",
		Type:    "Conference and Workshop Papers",
		Title:   "Another Paper.",
		Venue:   "LPNMR",
		Year:    "1991",
		Authors: authorList{"Vladimir Lifschitz"},
	}

	entry := EntryFromHit(hit)
	if entry.Type != "inproceedings" {
		t.Errorf("type = %q", entry.Type)
	}
	if entry.Text("booktitle") != "LPNMR" || entry.Text("journal") != "" {
		t.Errorf("venue fields = %q / %q", entry.Text("booktitle"), entry.Text("journal"))
	}
}

func TestEntryFromHitEditorship(t *testing.T) {
	hit := Hit{
		Key:   "conf/lpnmr/2019",
		Type:  "Editorship",
		Title: "Logic Programming and Nonmonotonic Reasoning, LPNMR 2019.",
		Venue: "LPNMR",
		Year:  "2019",
	}

	entry := EntryFromHit(hit)
	if entry.Type != "proceedings" {
		t.Errorf("type = %q", entry.Type)
	}
	if entry.Text("booktitle") != "" || entry.Text("journal") != "" {
		t.Error("proceedings gained a venue field")
	}
	if entry.Text("author") != "" {
		t.Errorf("author = %q, want none", entry.Text("author"))
	}
}

func TestEntryFromHitUnknownType(t *testing.T) {
	entry := EntryFromHit(Hit{Key: "x/y/Z", Type: "Withdrawn Items"})
	if entry.Type != "misc" {
		t.Errorf("type = %q, want misc", entry.Type)
	}
}
