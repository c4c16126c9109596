package tables

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the curated tables, overlaying the built-in defaults with
// a YAML file when path is non-empty.
func Load(path string) (*Tables, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}

	var file Tables
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tables file %s: %w", path, err)
	}

	t.Merge(&file)
	return t, nil
}

// Merge overlays the non-empty sections of other. A section present in
// other replaces the receiver's section wholesale rather than appending,
// so a tables file can also shrink a default list.
func (t *Tables) Merge(other *Tables) {
	if len(other.ExcludeIDs) > 0 {
		t.ExcludeIDs = other.ExcludeIDs
	}
	if len(other.WholeNames) > 0 {
		t.WholeNames = other.WholeNames
	}
	if len(other.ReviewedNames) > 0 {
		t.ReviewedNames = other.ReviewedNames
	}
	if len(other.Groupings) > 0 {
		t.Groupings = other.Groupings
	}
	if len(other.Journals) > 0 {
		t.Journals = other.Journals
	}
	if len(other.SkipJournals) > 0 {
		t.SkipJournals = other.SkipJournals
	}
}

// Dump writes the tables as YAML.
func (t *Tables) Dump(w io.Writer) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode tables: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tables: %w", err)
	}
	return nil
}
