package records

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/unibib/bibtidy/internal/bib"
)

func testDatabase() *bib.Database {
	article := bib.Entry{ID: "gel88a", Type: "article"}
	article.Set("author", "M. Gelfond")
	article.Set("title", "Autoepistemic Logic")
	article.SetValue("journal", bib.MacroRef("aij"))
	article.Set("year", "1988")

	paper := bib.Entry{ID: "lif19b", Type: "inproceedings"}
	paper.Set("author", "V. Lifschitz")
	paper.Set("title", "Another Paper")
	paper.Set("crossref", "lpnmr19")

	return &bib.Database{
		Strings: map[string]string{"aij": "Artificial Intelligence"},
		Entries: []bib.Entry{article, paper},
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	doc := `{
  "strings": {"aij": "Artificial Intelligence"},
  "entries": [
    {"id": "gel88a", "type": "article", "fields": {"title": "Autoepistemic Logic", "journal": {"macro": "aij"}}}
  ]
}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if db.Strings["aij"] != "Artificial Intelligence" {
		t.Errorf("strings = %v", db.Strings)
	}
	if len(db.Entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(db.Entries))
	}
	entry := db.Entries[0]
	if entry.ID != "gel88a" || entry.Text("title") != "Autoepistemic Logic" {
		t.Errorf("entry = %+v", entry)
	}
	if v := entry.Fields["journal"]; !v.Macro || v.Text != "aij" {
		t.Errorf("journal = %+v, want the aij macro", v)
	}
}

func TestLoadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.jsonl")
	doc := `{"id": "gel88a", "type": "article", "fields": {"title": "Autoepistemic Logic"}}

{"id": "lif19b", "type": "inproceedings", "fields": {"title": "Another Paper"}}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(db.Entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(db.Entries))
	}
	if db.Entries[1].ID != "lif19b" {
		t.Errorf("second entry = %+v", db.Entries[1])
	}
}

func TestLoadJSONLBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.jsonl")
	if err := os.WriteFile(path, []byte("{\"id\": \"a\"}\nnot json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded on malformed JSONL")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("test.txt"); err == nil {
		t.Error("Load() succeeded on an unsupported extension")
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/file.json"); err == nil {
		t.Error("Load() succeeded on a missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".jsonl"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			db := testDatabase()
			if ext == ".jsonl" {
				db.Strings = nil // entry-per-line files carry no string table
			}

			if err := Save(path, db); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, db) {
				t.Errorf("round trip = %+v, want %+v", got, db)
			}
		})
	}
}

func TestMarshalStable(t *testing.T) {
	db := testDatabase()
	first, err := Marshal(db, "a.json")
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := Marshal(db, "b.json")
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(first) != string(second) {
		t.Error("Marshal() is not deterministic")
	}
	if first[len(first)-1] != '\n' {
		t.Error("Marshal() output does not end in a newline")
	}
}

func TestMarshalParquetUnsupported(t *testing.T) {
	if _, err := Marshal(testDatabase(), "out.parquet"); err == nil {
		t.Error("Marshal() succeeded for a parquet target")
	}
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.parquet")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	writer := parquet.NewGenericWriter[flatRecord](file)
	_, err = writer.Write([]flatRecord{
		{ID: "gel88a", Type: "article", Title: "Autoepistemic Logic", Author: "M. Gelfond", Year: "1988"},
		{ID: "lif19b", Type: "inproceedings", Title: "Another Paper", Crossref: "lpnmr19"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(db.Entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(db.Entries))
	}
	first := db.Entries[0]
	if first.ID != "gel88a" || first.Text("author") != "M. Gelfond" {
		t.Errorf("first entry = %+v", first)
	}
	if _, ok := first.Fields["crossref"]; ok {
		t.Error("empty parquet column produced a field")
	}
	if db.Entries[1].Text("crossref") != "lpnmr19" {
		t.Errorf("second entry = %+v", db.Entries[1])
	}
}
