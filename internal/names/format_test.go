package names

import (
	"reflect"
	"testing"
)

func TestAbbreviateFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John", "J."},
		{"Juan Carlos", "J."},
		{"J.", "J."},
		{"Ju", "Ju"},
		{"X", "X"},
		{"", ""},
		{"J.-P.", "J."},
		{"J{o}hn", "J."},
		{"T\\'eo", "T."},
		{"{\\'E}mile", "{\\'E}mile"},
		{"{\\relax Ho}", "{\\relax Ho}"},
	}

	for _, tt := range tests {
		if got := AbbreviateFirst(tt.in); got != tt.want {
			t.Errorf("AbbreviateFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single name",
			in:   "John Smith",
			want: []string{"John Smith"},
		},
		{
			name: "two names",
			in:   "John Smith and Jane Doe",
			want: []string{"John Smith", "Jane Doe"},
		},
		{
			name: "wrapped lines",
			in:   "John Smith and\nJane Doe",
			want: []string{"John Smith", "Jane Doe"},
		},
		{
			name: "Anderson is not a separator",
			in:   "Neo Anderson",
			want: []string{"Neo Anderson"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func testFormatter() Formatter {
	return Formatter{
		Splitter: Splitter{Strict: true},
		WholeNames: map[string]struct{}{
			"The STREAM Group": {},
		},
		Reviewed: map[Tuple]struct{}{
			{"Ch.", "", "Goller", ""}: {},
		},
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name         string
		field        string
		want         string
		wantModified []Tuple
		wantKey      string
	}{
		{
			name:         "abbreviates first names",
			field:        "John Smith and Jane Doe",
			want:         "J. Smith and J. Doe",
			wantModified: []Tuple{{"John", "", "Smith", ""}, {"Jane", "", "Doe", ""}},
			wantKey:      "smidoe",
		},
		{
			name:    "already abbreviated",
			field:   "J. Smith",
			want:    "J. Smith",
			wantKey: "smith",
		},
		{
			name:    "whole name kept verbatim",
			field:   "The STREAM Group",
			want:    "The STREAM Group",
			wantKey: "thestreamgroup",
		},
		{
			name:         "reviewed name not abbreviated",
			field:        "Ch. Goller and John Smith",
			want:         "Ch. Goller and J. Smith",
			wantModified: []Tuple{{"John", "", "Smith", ""}},
			wantKey:      "golsmi",
		},
		{
			name:         "von carried through",
			field:        "de La Fontaine, Jean",
			want:         "J. de La Fontaine",
			wantModified: []Tuple{{"Jean", "de", "La Fontaine", ""}},
			wantKey:      "lafontaine",
		},
		{
			name:         "three authors",
			field:        "Michael Gelfond and Vladimir Lifschitz and Grigori Schwarz",
			want:         "M. Gelfond and V. Lifschitz and G. Schwarz",
			wantModified: []Tuple{{"Michael", "", "Gelfond", ""}, {"Vladimir", "", "Lifschitz", ""}, {"Grigori", "", "Schwarz", ""}},
			wantKey:      "gelisc",
		},
	}

	f := testFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatList(tt.field)
			if err != nil {
				t.Fatalf("FormatList(%q) returned error: %v", tt.field, err)
			}
			if got.Formatted != tt.want {
				t.Errorf("Formatted = %q, want %q", got.Formatted, tt.want)
			}
			if !reflect.DeepEqual(got.Modified, tt.wantModified) {
				t.Errorf("Modified = %v, want %v", got.Modified, tt.wantModified)
			}
			if got.BaseKey != tt.wantKey {
				t.Errorf("BaseKey = %q, want %q", got.BaseKey, tt.wantKey)
			}
		})
	}
}

func TestFormatListGrouping(t *testing.T) {
	f := testFormatter()
	f.Splitter.Groups = map[string]Name{
		"Tran Cao Son": {First: []string{"Tran Son"}, Last: []string{"Cao"}},
	}

	got, err := f.FormatList("Tran Cao Son")
	if err != nil {
		t.Fatalf("FormatList returned error: %v", err)
	}
	if got.Formatted != "T. Cao" {
		t.Errorf("Formatted = %q, want %q", got.Formatted, "T. Cao")
	}
	wantModified := []Tuple{{"Tran Son", "", "Cao", ""}}
	if !reflect.DeepEqual(got.Modified, wantModified) {
		t.Errorf("Modified = %v, want %v", got.Modified, wantModified)
	}
}

func TestFormatListStrictError(t *testing.T) {
	f := testFormatter()
	if _, err := f.FormatList("John Smith and Doe}"); err == nil {
		t.Fatal("Expected error for malformed name, got nil")
	}
}
