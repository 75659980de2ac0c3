package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-parser/internal/types"
)

// nameWindow is how many leading non-empty lines are considered for the name.
const nameWindow = 10

// Résumé headers are too varied for a single regex, so the extractor tries
// a fixed sequence of independent line shapes, cheapest and most specific
// first. Each rule inspects the first nameWindow lines and the first rule
// that produces a candidate wins.
type nameRule struct {
	name  string
	apply func(lines []string) (string, bool)
}

var nameRules = []nameRule{
	{"two-line all-caps", nameTwoLineCaps},
	{"split across lines", nameSplitLines},
	{"fragmented all-caps", nameFragmentedCaps},
	{"LASTNAME FIRSTNAME", nameCapsCaps},
	{"LASTNAME Firstname", nameCapsTitle},
	{"Firstname Lastname", nameTitleTitle},
}

var (
	allCapsWordRe   = regexp.MustCompile(`^[A-ZÀ-Ÿ]+$`)
	capitalizedRe   = regexp.MustCompile(`^[A-ZÀ-ÿ][a-zà-ÿ]+$`)
	capsBoilerRe    = regexp.MustCompile(`CV|RESUME|CURRICULUM|STAGE|INTERNSHIP`)
	lineBoilerRe    = regexp.MustCompile(`(?i)ingénieur|engineer|cv|resume|curriculum|élève|stage|transformation|digital|looking|for|internship`)
	personalInfoRe  = regexp.MustCompile(`(?i)ans|Meknès|célibataire|Nationale|nationale`)
	fragmentedRe    = regexp.MustCompile(`^([A-ZÀ-Ÿ]{4,})\s+([A-ZÀ-Ÿ]{2,})\s+([A-ZÀ-Ÿ]{2,})$`)
	capsCapsRe      = regexp.MustCompile(`^([A-ZÀ-Ÿ]{3,})\s+([A-ZÀ-Ÿ]{3,})$`)
	capsTitleRe     = regexp.MustCompile(`^([A-ZÀ-Ÿ]+)\s+([A-ZÀ-ÿ][a-zà-ÿ]+)$`)
	titleTitleRe    = regexp.MustCompile(`^([A-ZÀ-ÿ][a-zà-ÿ]+)\s+([A-ZÀ-ÿ][a-zà-ÿ]+)$`)
	institutionalRe = regexp.MustCompile(`(?i)Nationale|nationale`)
)

// extractName returns the best-effort candidate name from the top of the
// document, or types.NameNotFound when no rule matches. It never fails.
func extractName(text string) string {
	lines := splitLines(text)
	if len(lines) > nameWindow {
		lines = lines[:nameWindow]
	}

	for _, rule := range nameRules {
		if name, ok := rule.apply(lines); ok {
			return name
		}
	}
	return types.NameNotFound
}

// nameTwoLineCaps matches the modern single-word-per-line header:
// "TAHA" on the first line and "LAMHANDI" on the second.
func nameTwoLineCaps(lines []string) (string, bool) {
	if len(lines) < 2 {
		return "", false
	}
	first, second := lines[0], lines[1]
	for _, l := range []string{first, second} {
		if len(l) < 3 || len(l) > 25 || !allCapsWordRe.MatchString(l) || capsBoilerRe.MatchString(l) {
			return "", false
		}
	}
	return titleWord(first) + " " + titleWord(second), true
}

// nameSplitLines matches a lastname on the first line with the firstname on
// a later line, an artifact of multi-column headers collapsing into lines.
func nameSplitLines(lines []string) (string, bool) {
	if len(lines) < 2 {
		return "", false
	}
	last := lines[0]
	if !capitalizedRe.MatchString(last) || institutionalRe.MatchString(last) {
		return "", false
	}
	for _, l := range lines[1:] {
		if len(l) < 3 || len(l) > 20 {
			continue
		}
		if !capitalizedRe.MatchString(l) {
			continue
		}
		if strings.ContainsAny(l, "0123456789@") || personalInfoRe.MatchString(l) {
			continue
		}
		return l + " " + last, true
	}
	return "", false
}

// rejectNameLine applies the shared per-line guards used by the single-line
// rules below.
func rejectNameLine(line string) bool {
	return len(line) > 60 || len(line) < 3 || lineBoilerRe.MatchString(line)
}

// nameFragmentedCaps handles PDF reflow splitting a name mid-word:
// "HAMRI YASS IR" becomes "Yassir Hamri".
func nameFragmentedCaps(lines []string) (string, bool) {
	for _, line := range lines {
		if rejectNameLine(line) {
			continue
		}
		if m := fragmentedRe.FindStringSubmatch(line); m != nil {
			first := m[2] + m[3]
			return titleWord(first) + " " + titleWord(m[1]), true
		}
	}
	return "", false
}

func nameCapsCaps(lines []string) (string, bool) {
	for _, line := range lines {
		if rejectNameLine(line) {
			continue
		}
		if m := capsCapsRe.FindStringSubmatch(line); m != nil {
			return titleWord(m[2]) + " " + titleWord(m[1]), true
		}
	}
	return "", false
}

func nameCapsTitle(lines []string) (string, bool) {
	for _, line := range lines {
		if rejectNameLine(line) {
			continue
		}
		if m := capsTitleRe.FindStringSubmatch(line); m != nil {
			return m[2] + " " + m[1], true
		}
	}
	return "", false
}

func nameTitleTitle(lines []string) (string, bool) {
	for _, line := range lines {
		if rejectNameLine(line) {
			continue
		}
		if titleTitleRe.MatchString(line) {
			return line, true
		}
	}
	return "", false
}
