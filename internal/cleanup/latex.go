// Package cleanup normalizes bibliography databases: unicode characters
// become LaTeX escapes, noise fields disappear, names and citation keys
// are canonicalized, and duplicate imports get marked for removal.
package cleanup

import "strings"

// latexEscapes maps the unicode characters that show up in author names
// and titles to their LaTeX spellings. ASCII characters never appear as
// keys, so plain strings pass through unchanged.
var latexEscapes = map[rune]string{
	'À': "{\\`A}",
	'È': "{\\`E}",
	'Ì': "{\\`I}",
	'Ò': "{\\`O}",
	'Ù': "{\\`U}",
	'à': "{\\`a}",
	'è': "{\\`e}",
	'ì': "{\\`i}",
	'ò': "{\\`o}",
	'ù': "{\\`u}",
	'Á': `{\'A}`,
	'É': `{\'E}`,
	'Í': `{\'I}`,
	'Ó': `{\'O}`,
	'Ú': `{\'U}`,
	'Ý': `{\'Y}`,
	'á': `{\'a}`,
	'é': `{\'e}`,
	'í': `{\'i}`,
	'ó': `{\'o}`,
	'ú': `{\'u}`,
	'ý': `{\'y}`,
	'Ć': `{\'C}`,
	'ć': `{\'c}`,
	'Ń': `{\'N}`,
	'ń': `{\'n}`,
	'Ś': `{\'S}`,
	'ś': `{\'s}`,
	'Ź': `{\'Z}`,
	'ź': `{\'z}`,
	'Â': `{\^A}`,
	'Ê': `{\^E}`,
	'Î': `{\^I}`,
	'Ô': `{\^O}`,
	'Û': `{\^U}`,
	'â': `{\^a}`,
	'ê': `{\^e}`,
	'î': `{\^i}`,
	'ô': `{\^o}`,
	'û': `{\^u}`,
	'Ã': `{\~A}`,
	'Ñ': `{\~N}`,
	'Õ': `{\~O}`,
	'ã': `{\~a}`,
	'ñ': `{\~n}`,
	'õ': `{\~o}`,
	'Ä': `{\"A}`,
	'Ë': `{\"E}`,
	'Ï': `{\"I}`,
	'Ö': `{\"O}`,
	'Ü': `{\"U}`,
	'ä': `{\"a}`,
	'ë': `{\"e}`,
	'ï': `{\"i}`,
	'ö': `{\"o}`,
	'ü': `{\"u}`,
	'ÿ': `{\"y}`,
	'Ç': `{\c{C}}`,
	'ç': `{\c{c}}`,
	'Ş': `{\c{S}}`,
	'ş': `{\c{s}}`,
	'Å': `{\AA}`,
	'å': `{\aa}`,
	'Ů': `{\r{U}}`,
	'ů': `{\r{u}}`,
	'Ø': `{\O}`,
	'ø': `{\o}`,
	'Æ': `{\AE}`,
	'æ': `{\ae}`,
	'Œ': `{\OE}`,
	'œ': `{\oe}`,
	'ß': `{\ss}`,
	'Ł': `{\L}`,
	'ł': `{\l}`,
	'Đ': `{\DJ}`,
	'đ': `{\dj}`,
	'Č': `{\v{C}}`,
	'č': `{\v{c}}`,
	'Ď': `{\v{D}}`,
	'ď': `{\v{d}}`,
	'Ě': `{\v{E}}`,
	'ě': `{\v{e}}`,
	'Ň': `{\v{N}}`,
	'ň': `{\v{n}}`,
	'Ř': `{\v{R}}`,
	'ř': `{\v{r}}`,
	'Š': `{\v{S}}`,
	'š': `{\v{s}}`,
	'Ť': `{\v{T}}`,
	'ť': `{\v{t}}`,
	'Ž': `{\v{Z}}`,
	'ž': `{\v{z}}`,
	'Ă': `{\u{A}}`,
	'ă': `{\u{a}}`,
	'Ğ': `{\u{G}}`,
	'ğ': `{\u{g}}`,
	'Ą': `{\k{A}}`,
	'ą': `{\k{a}}`,
	'Ę': `{\k{E}}`,
	'ę': `{\k{e}}`,
	'Ż': `{\.{Z}}`,
	'ż': `{\.{z}}`,
	'İ': `{\.{I}}`,
	'ı': `{\i}`,
	'Ő': `{\H{O}}`,
	'ő': `{\H{o}}`,
	'Ű': `{\H{U}}`,
	'ű': `{\H{u}}`,
	'Ā': `{\={A}}`,
	'ā': `{\={a}}`,
	'Ē': `{\={E}}`,
	'ē': `{\={e}}`,
	'Ī': `{\={I}}`,
	'ī': `{\={i}}`,
	'Ō': `{\={O}}`,
	'ō': `{\={o}}`,
	'Ū': `{\={U}}`,
	'ū': `{\={u}}`,
	' ': "~",
	'–': "--",
	'—': "---",
	'‘': "`",
	'’': "'",
	'“': "``",
	'”': "''",
	'…': `{\ldots}`,
}

// LatexEscape rewrites the unicode characters of a string as LaTeX
// escapes. Strings that are already pure ASCII come back unchanged.
func LatexEscape(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if esc, ok := latexEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
