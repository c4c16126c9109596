package names

import "strings"

// Name holds the structured parts of a personal name: given names, the
// lowercase "von" particle, surnames, and a generational suffix. Each part
// is an ordered list of words; words keep their brace groups and escapes
// verbatim. Treat a returned Name as immutable and copy before changing it.
type Name struct {
	First []string `json:"first,omitempty" yaml:"first,omitempty"`
	Von   []string `json:"von,omitempty" yaml:"von,omitempty"`
	Last  []string `json:"last,omitempty" yaml:"last,omitempty"`
	Jr    []string `json:"jr,omitempty" yaml:"jr,omitempty"`

	// Literal marks a name taken verbatim from the whole-names table,
	// such as a corporate or group author. Literal names carry the raw
	// string as their only surname word and are never abbreviated.
	Literal bool `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// Tuple is a name's four space-joined parts in first, von, last, jr order.
// It is comparable, so it serves as the key of curated name tables.
type Tuple [4]string

// LiteralName returns a Name for a string that must never be split.
func LiteralName(raw string) Name {
	return Name{Last: []string{raw}, Literal: true}
}

// IsZero reports whether the name has no parts at all, the result of
// splitting a blank or whitespace-only input.
func (n Name) IsZero() bool {
	return len(n.First) == 0 && len(n.Von) == 0 && len(n.Last) == 0 && len(n.Jr) == 0
}

// Join returns the four parts as space-joined strings.
func (n Name) Join() (first, von, last, jr string) {
	return strings.Join(n.First, " "),
		strings.Join(n.Von, " "),
		strings.Join(n.Last, " "),
		strings.Join(n.Jr, " ")
}

// Tuple returns the space-joined parts as a comparable table key.
func (n Name) Tuple() Tuple {
	first, von, last, jr := n.Join()
	return Tuple{first, von, last, jr}
}

// String composes the display form "First von Last Jr". Parts after the
// first name get a separating space only when a first name is present;
// without one they are concatenated directly, which is the historical
// composition this toolset's bibliographies were normalized with.
func (n Name) String() string {
	first, von, last, jr := n.Join()
	var b strings.Builder
	b.WriteString(first)
	for _, part := range []string{von, last, jr} {
		if part == "" {
			continue
		}
		if first != "" {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return b.String()
}
