package bib

import (
	"encoding/json"
	"maps"
	"sort"
)

// Value is a field value: literal text, or a reference to a @string
// abbreviation when Macro is true. Text then holds the macro name.
type Value struct {
	Text  string
	Macro bool
}

// Literal wraps plain field text.
func Literal(text string) Value {
	return Value{Text: text}
}

// MacroRef references a @string abbreviation by name.
func MacroRef(name string) Value {
	return Value{Text: name, Macro: true}
}

// MarshalJSON encodes literal values as plain strings and macro
// references as {"macro": name} objects.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Macro {
		return json.Marshal(struct {
			Macro string `json:"macro"`
		}{v.Text})
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts both encodings of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var ref struct {
			Macro string `json:"macro"`
		}
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		*v = Value{Text: ref.Macro, Macro: true}
		return nil
	}
	v.Macro = false
	return json.Unmarshal(data, &v.Text)
}

// Entry is one parsed bibliographic record: citation key, entry type, and
// fields. Field names are the conventional lowercase BibTeX ones (title,
// author, editor, year, journal, crossref, booktitle, ...).
type Entry struct {
	ID     string           `json:"id"`
	Type   string           `json:"type"`
	Fields map[string]Value `json:"fields,omitempty"`
}

// Text returns a field's literal text, or "" when the field is absent or
// a macro reference.
func (e *Entry) Text(name string) string {
	v, ok := e.Fields[name]
	if !ok || v.Macro {
		return ""
	}
	return v.Text
}

// Set stores literal field text, allocating the field map on first use.
func (e *Entry) Set(name, text string) {
	e.SetValue(name, Literal(text))
}

// SetValue stores a field value, allocating the field map on first use.
func (e *Entry) SetValue(name string, v Value) {
	if e.Fields == nil {
		e.Fields = make(map[string]Value)
	}
	e.Fields[name] = v
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() Entry {
	return Entry{ID: e.ID, Type: e.Type, Fields: maps.Clone(e.Fields)}
}

// Equal reports whether two entries carry the same key, type, and fields.
func (e *Entry) Equal(other *Entry) bool {
	return e.ID == other.ID && e.Type == other.Type && maps.Equal(e.Fields, other.Fields)
}

// Database is a record file's content: the @string abbreviation table and
// the entries in file order.
type Database struct {
	Strings map[string]string `json:"strings,omitempty"`
	Entries []Entry           `json:"entries"`
}

// Index maps citation keys to their entries. The pointers reach into the
// Entries slice, so do not append while holding an index.
func (d *Database) Index() map[string]*Entry {
	index := make(map[string]*Entry, len(d.Entries))
	for i := range d.Entries {
		index[d.Entries[i].ID] = &d.Entries[i]
	}
	return index
}

// IDSet returns the set of citation keys in use.
func (d *Database) IDSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(d.Entries))
	for i := range d.Entries {
		ids[d.Entries[i].ID] = struct{}{}
	}
	return ids
}

// SortEntries orders entries by citation key, the canonical layout of a
// formatted file.
func (d *Database) SortEntries() {
	sort.SliceStable(d.Entries, func(i, j int) bool {
		return d.Entries[i].ID < d.Entries[j].ID
	})
}
