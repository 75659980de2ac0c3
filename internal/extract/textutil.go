package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRe = regexp.MustCompile(`\s+`)

// splitLines splits text into trimmed non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// squashSpaces collapses runs of whitespace into single spaces.
func squashSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// stripSpaces removes all whitespace. Used to recognize letter-spaced
// section headers such as "T E C H  S K I L L S".
func stripSpaces(s string) string {
	return spaceRe.ReplaceAllString(s, "")
}

// foldFrenchAccents maps the accented e variants to the bare letter.
// This folding is applied only on hot paths (section headers like
// "EXPÉRIENCE"); matching elsewhere is accent-sensitive. Known limitation.
func foldFrenchAccents(s string) string {
	r := strings.NewReplacer("é", "e", "è", "e", "ê", "e", "É", "E", "È", "E", "Ê", "E")
	return r.Replace(s)
}

// titleWord lowercases a word except for its first rune: "TAHA" -> "Taha".
func titleWord(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	first := unicode.ToUpper(runes[0])
	rest := strings.ToLower(string(runes[1:]))
	return string(first) + rest
}
