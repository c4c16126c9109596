package bib

import "maps"

// MergeCrossReferences resolves crossref fields against a proceedings
// database, copying the referenced volume's fields into each citing
// entry. The volume's title moves to booktitle unless the volume already
// has one, and its remaining fields, entry type included, take precedence
// over the citing entry's. The crossref field itself survives, so later
// matching can still see which volume an entry cites.
func MergeCrossReferences(db, procs *Database) {
	index := procs.Index()
	for i := range db.Entries {
		entry := &db.Entries[i]
		ref := entry.Text("crossref")
		if ref == "" {
			continue
		}
		parent, ok := index[ref]
		if !ok {
			continue
		}
		fields := maps.Clone(parent.Fields)
		if title, ok := fields["title"]; ok {
			if _, ok := fields["booktitle"]; !ok {
				fields["booktitle"] = title
			}
			delete(fields, "title")
		}
		entry.Type = parent.Type
		for name, v := range fields {
			entry.SetValue(name, v)
		}
	}
}

// LinkProceedings fills in crossref fields by booktitle: entries whose
// literal booktitle equals a proceedings volume's title are linked to
// that volume's citation key. It returns the number of entries linked.
func LinkProceedings(db, procs *Database) int {
	titles := make(map[string]string, len(procs.Entries))
	for i := range procs.Entries {
		p := &procs.Entries[i]
		title := p.Text("title")
		if title == "" {
			title = p.Text("booktitle")
		}
		if title != "" {
			titles[title] = p.ID
		}
	}

	linked := 0
	for i := range db.Entries {
		entry := &db.Entries[i]
		if id, ok := titles[entry.Text("booktitle")]; ok {
			entry.Set("crossref", id)
			linked++
		}
	}
	return linked
}
