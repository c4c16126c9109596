package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
)

// Marshal renders a database in the canonical byte form of the format
// the path's extension names. The check command compares these bytes
// against the file on disk.
func Marshal(db *bib.Database, path string) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := json.MarshalIndent(db, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode record file: %w", err)
		}
		return append(data, '\n'), nil
	case ".jsonl":
		var buf bytes.Buffer
		for i := range db.Entries {
			line, err := json.Marshal(&db.Entries[i])
			if err != nil {
				return nil, fmt.Errorf("failed to encode entry %s: %w", db.Entries[i].ID, err)
			}
			buf.Write(line)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: .json, .jsonl)", ext)
	}
}

// Save writes a database to path in the format its extension names.
func Save(path string, db *bib.Database) error {
	data, err := Marshal(db, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}
	return nil
}
