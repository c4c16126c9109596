package names

import "strings"

// AbbreviateFirst shortens a joined first-name string to its initial
// followed by a period. Strings of one or two characters come back
// unchanged, as do strings opening with a brace-escaped control sequence
// such as {\relax ...}, whose first printable character is not a letter.
func AbbreviateFirst(first string) string {
	r := []rune(first)
	if len(r) <= 2 || (r[0] == '{' && r[1] == '\\') {
		return first
	}
	return string(r[0]) + "."
}

// SplitList breaks an author or editor field into individual raw names on
// the " and " separator, collapsing the newlines BibTeX line wrapping
// leaves behind.
func SplitList(field string) []string {
	parts := strings.Split(strings.ReplaceAll(field, "\n", " "), " and ")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Formatter canonicalizes author and editor lists: names are split,
// first names abbreviated, and the list rejoined. The curated tables
// steer it: whole names are never split, and reviewed tuples keep their
// first names as written.
type Formatter struct {
	Splitter   Splitter
	WholeNames map[string]struct{}
	Reviewed   map[Tuple]struct{}
}

// ListResult is the outcome of canonicalizing one author or editor field.
type ListResult struct {
	// Formatted is the rewritten field, names joined with " and ".
	Formatted string
	// Modified lists the name tuples whose first name the call
	// abbreviated and that no curated table knew about yet.
	Modified []Tuple
	// BaseKey is the surname-derived citation key stem for the listed
	// names.
	BaseKey string
}

// FormatList canonicalizes a name-list field.
func (f Formatter) FormatList(field string) (ListResult, error) {
	var formatted []string
	var surnames []string
	var modified []Tuple

	for _, raw := range SplitList(field) {
		n, err := f.splitOne(raw)
		if err != nil {
			return ListResult{}, err
		}
		if !n.Literal && !n.IsZero() {
			tuple := n.Tuple()
			if _, reviewed := f.Reviewed[tuple]; !reviewed && tuple[0] != "" {
				abbreviated := AbbreviateFirst(tuple[0])
				if abbreviated != tuple[0] {
					modified = append(modified, tuple)
				}
				n.First = []string{abbreviated}
			}
		}
		formatted = append(formatted, n.String())
		_, _, last, _ := n.Join()
		surnames = append(surnames, last)
	}

	return ListResult{
		Formatted: strings.Join(formatted, " and "),
		Modified:  modified,
		BaseKey:   SurnameKey(surnames),
	}, nil
}

func (f Formatter) splitOne(raw string) (Name, error) {
	if _, ok := f.WholeNames[raw]; ok {
		return LiteralName(raw), nil
	}
	return f.Splitter.Split(raw)
}
