package names

import (
	"strings"
	"unicode"
)

// Per-word case classes. A word is classified by its first case-bearing
// letter; words with no cased letter stay caseless. Caseless words count
// against the uppercase total in the one-section split heuristic but still
// occupy capitalized positions, so the constant values matter.
const (
	caseCaseless = -1
	caseLower    = 0
	caseUpper    = 1
)

// scanState is what the scanner is currently inside of. Brace-start lasts
// exactly one character: the character after "{" decides whether the group
// is a control sequence, a special character, or ordinary braced text.
type scanState int

const (
	scanNormal scanState = iota
	scanBraceStart
	scanControlSeq
	scanSpecialChar
)

// Splitter splits raw BibTeX author names. Groups maps whitespace-normalized
// full names to preset parts that bypass the scanner, for names that must
// not be split on word boundaries. The zero value is a lenient splitter
// with no presets.
type Splitter struct {
	Strict bool
	Groups map[string]Name
}

// Split breaks a raw name into structured parts following the BibTeX
// "First von Last", "von Last, First", and "von Last, Jr, First" forms,
// returning an *InvalidNameError on grammar violations.
func Split(raw string) (Name, error) {
	return Splitter{Strict: true}.Split(raw)
}

// SplitLenient splits like Split but recovers from grammar violations
// instead of failing: unmatched closing braces gain a compensating opening
// brace, unterminated groups are closed at end of input, and commas beyond
// the third section are ignored.
func SplitLenient(raw string) Name {
	n, _ := Splitter{}.Split(raw)
	return n
}

// Split scans the raw name and assigns its words to parts.
func (s Splitter) Split(raw string) (Name, error) {
	if len(s.Groups) > 0 {
		if preset, ok := s.Groups[strings.Join(strings.Fields(raw), " ")]; ok {
			return preset, nil
		}
	}

	sections, caseLists, err := s.scan(raw)
	if err != nil {
		return Name{}, err
	}

	hasWords := false
	for _, sec := range sections {
		if len(sec) > 0 {
			hasWords = true
			break
		}
	}
	if !hasWords {
		return Name{}, nil
	}

	if len(sections) == 1 {
		return assignSingle(sections[0], caseLists[0]), nil
	}
	return assignCommaForm(sections, caseLists), nil
}

// isSep reports the separator characters of the name grammar: BibTeX
// treats the tie "~" as whitespace here.
func isSep(r rune) bool {
	switch r {
	case ' ', '~', '\r', '\n', '\t':
		return true
	}
	return false
}

func classify(r rune) int {
	if unicode.IsUpper(r) {
		return caseUpper
	}
	return caseLower
}

// scan walks the raw string once, collecting comma-separated sections of
// words and a parallel list of per-word case classes.
func (s Splitter) scan(raw string) ([][]string, [][]int, error) {
	sections := [][]string{nil}
	caseLists := [][]int{nil}
	var word []rune
	wordCase := caseCaseless
	level := 0
	state := scanNormal

	flush := func() {
		if len(word) == 0 {
			return
		}
		sections[len(sections)-1] = append(sections[len(sections)-1], string(word))
		caseLists[len(caseLists)-1] = append(caseLists[len(caseLists)-1], wordCase)
		word = word[:0]
		wordCase = caseCaseless
		state = scanNormal
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\\' {
			if i+1 >= len(runes) {
				// A lone trailing backslash escapes nothing; keep it
				// and let the scan end.
				word = append(word, r)
				break
			}
			i++
			escaped := runes[i]
			if !isSep(escaped) {
				if state == scanBraceStart {
					if unicode.IsLetter(escaped) {
						state = scanControlSeq
					} else {
						state = scanSpecialChar
					}
				} else if wordCase == caseCaseless && unicode.IsLetter(escaped) {
					wordCase = classify(escaped)
				}
				word = append(word, '\\', escaped)
				continue
			}
			// BibTeX has no escaped whitespace: keep the backslash and
			// reprocess the whitespace as an ordinary separator.
			word = append(word, '\\')
			r = escaped
		}

		if r == '{' {
			level++
			word = append(word, r)
			state = scanBraceStart
			continue
		}

		// Brace-start lasts a single character.
		if state == scanBraceStart {
			state = scanNormal
		}

		if r == '}' {
			if level > 0 {
				level--
			} else if s.Strict {
				return nil, nil, &InvalidNameError{Name: raw, Reason: ErrUnmatchedBrace}
			} else {
				word = append([]rune{'{'}, word...)
			}
			state = scanNormal
			word = append(word, r)
			continue
		}

		if level > 0 {
			switch state {
			case scanControlSeq:
				if !unicode.IsLetter(r) {
					state = scanSpecialChar
				}
			case scanSpecialChar:
				if wordCase == caseCaseless && unicode.IsLetter(r) {
					wordCase = classify(r)
				}
			}
			word = append(word, r)
			continue
		}

		if r == ',' || isSep(r) {
			flush()
			if r == ',' {
				if len(sections) < 3 {
					sections = append(sections, nil)
					caseLists = append(caseLists, nil)
				} else if s.Strict {
					return nil, nil, &InvalidNameError{Name: raw, Reason: ErrTooManyCommas}
				}
			}
			continue
		}

		word = append(word, r)
		if wordCase == caseCaseless && unicode.IsLetter(r) {
			wordCase = classify(r)
		}
	}

	if level > 0 {
		if s.Strict {
			return nil, nil, &InvalidNameError{Name: raw, Reason: ErrUnterminatedBrace}
		}
		for ; level > 0; level-- {
			word = append(word, '}')
		}
	}
	flush()

	if last := len(sections) - 1; len(sections[last]) == 0 {
		if s.Strict && len(sections) > 1 {
			return nil, nil, &InvalidNameError{Name: raw, Reason: ErrTrailingComma}
		}
		sections = sections[:last]
		caseLists = caseLists[:last]
	}

	return sections, caseLists, nil
}

// assignSingle handles the "First von Last" form. No von part is ever
// produced here; the curated tables are tuned against that behavior, so
// names needing a particle go through the comma forms or a preset.
func assignSingle(words []string, caseList []int) Name {
	var n Name
	switch {
	case len(words) == 1:
		n.Last = words
	case len(words) == 2:
		n.First = words[:1]
		n.Last = words[1:]
	default:
		if isInitial(words[1]) {
			// "D. E. Knuth" style: a leading initial pair is a
			// two-word first name.
			n.First = words[:2]
			n.Last = words[2:]
			break
		}
		capitals := 0
		var positions []int
		for i, c := range caseList {
			capitals += c
			if c != caseLower {
				positions = append(positions, i)
			}
		}
		if capitals > 2 {
			cut := positions[len(positions)-3] + 1
			n.First = words[:cut]
			n.Last = words[cut:]
		} else {
			n.First = words[:1]
			n.Last = words[1:]
		}
	}
	return n
}

// isInitial reports whether a word's second character is a period, the
// "J." shape. One-character words are not initials.
func isInitial(word string) bool {
	r := []rune(word)
	return len(r) >= 2 && r[1] == '.'
}

// assignCommaForm handles "von Last, First" and "von Last, Jr, First":
// the final section is the first name, the middle one the suffix, and the
// leading section splits into von and last just after its last
// lowercase-classified word.
func assignCommaForm(sections [][]string, caseLists [][]int) Name {
	var n Name
	if last := sections[len(sections)-1]; len(last) > 0 {
		n.First = last
	}
	if len(sections) == 3 && len(sections[1]) > 0 {
		n.Jr = sections[1]
	}

	words, caseList := sections[0], caseLists[0]
	if len(words) == 1 {
		n.Last = words
		return n
	}
	cut := 0
	for i := len(caseList) - 1; i >= 0; i-- {
		if caseList[i] == caseLower {
			cut = i + 1
			break
		}
	}
	if cut == len(words) {
		// Everything lowercase would leave last empty; last wins.
		cut = 0
	}
	if cut > 0 {
		n.Von = words[:cut]
	}
	n.Last = words[cut:]
	return n
}
