package extract

import "strings"

// cleanHeader lowercases a line and strips colons and whitespace, the
// normal form used for header comparison.
func cleanHeader(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ":", "")
	return stripSpaces(s)
}

// locateSection finds the first section whose header matches one of the
// given synonyms. A line counts as a header when, stripped of punctuation
// and whitespace, it equals or contains a synonym AND the line is short:
// under 60 characters, or under 20 once all whitespace is removed. The
// second threshold tolerates letter-spaced headers like "T E C H S K I L L S".
//
// start is the index of the first line after the header; end is the index
// of the next known section header, or len(lines) when none follows. The
// returned range never has end < start.
func locateSection(lines []string, synonyms []string) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		noSpaces := stripSpaces(lower)
		clean := cleanHeader(line)

		for _, syn := range synonyms {
			synClean := cleanHeader(syn)
			if (strings.Contains(clean, synClean) || strings.Contains(noSpaces, synClean)) &&
				(len(lower) < 60 || len(noSpaces) < 20) {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}

	if start < 0 {
		return 0, 0, false
	}

	end = len(lines)
	for i := start; i < len(lines); i++ {
		lower := strings.ToLower(strings.TrimSpace(lines[i]))
		clean := cleanHeader(lines[i])
		noSpaces := stripSpaces(lower)

		for _, header := range sectionEndHeaders {
			headerClean := cleanHeader(header)
			if clean == headerClean || clean == headerClean+"s" ||
				noSpaces == headerClean ||
				(len(lower) < 50 && strings.Contains(clean, headerClean)) {
				return start, i, true
			}
		}
	}

	return start, end, true
}

// sectionLines returns the lines of the located section, or all lines when
// the section was not found. Extractors fall back to scanning the whole
// document at the cost of more false positives.
func sectionLines(lines []string, synonyms []string) ([]string, bool) {
	start, end, ok := locateSection(lines, synonyms)
	if !ok {
		return lines, false
	}
	return lines[start:end], true
}

// sectionText joins the located section back into a single string. Unlike
// sectionLines it does not fall back to the whole document.
func sectionText(lines []string, synonyms []string) (string, bool) {
	start, end, ok := locateSection(lines, synonyms)
	if !ok {
		return "", false
	}
	return strings.Join(lines[start:end], "\n"), true
}
