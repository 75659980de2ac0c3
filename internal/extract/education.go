package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-parser/internal/types"
)

var (
	// frenchDateRangeRe matches the "De 2019 à 2022 École Nationale ..."
	// form that supplies year range and institution in one line.
	frenchDateRangeRe      = regexp.MustCompile(`(?i)De\s+(\d{4})\s+à\s+(\d{4})`)
	frenchDateInstRe       = regexp.MustCompile(`(?i)De\s+\d{4}\s+à\s+\d{4}\s+(.+)`)
	dateRangePrefixRe      = regexp.MustCompile(`(?i)^De\s+\d{4}\s+à\s+\d{4}`)
	yearTokenRe            = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	bareYearLineRe         = regexp.MustCompile(`^\d{4}$`)
	leadingYearRe          = regexp.MustCompile(`^\d{4}\s+`)
	degreeBoundaryRe       = regexp.MustCompile(`(?i)^(Diplôme|Baccalauréat|De \d{4}|Ecole|École|Université|Omar|Ibn|\d{4}\s|curieux|dynamique|rigoureux|d'apprendre)`)
	degreeContinuationRe   = regexp.MustCompile(`(?i)^(Intelligence|Artificielle|Sciences?|Physiques?|Engineering|\(.*\)|et\s)`)
	institutionKeywordRe   = regexp.MustCompile(`(?i)école|ecole|ensah|ensa|université|university|institut|omar|ibn`)
	institutionShapeRe     = regexp.MustCompile(`^[A-ZÀ-ÿ][a-zà-ÿ]+ [A-ZÀ-ÿ]`)
	degreeContinuationMax  = 3 // lines a wrapped degree name may span past the first
	educationLineSkipAfter = 4 // lines consumed after a matched entry
)

// hasDegreeKeyword reports whether the line mentions any known degree word.
func hasDegreeKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractEducation returns education entries in document order. Scanning is
// restricted to the education section when one is located, otherwise the
// whole document is scanned.
func extractEducation(text string) []types.EducationEntry {
	lines := splitLines(text)
	searchLines, _ := sectionLines(lines, educationSynonyms)

	education := []types.EducationEntry{}

	i := 0
	for i < len(searchLines) {
		line := searchLines[i]

		// A "De YYYY à YYYY" line is a date range, not a degree, even
		// though "diplôme" style keywords may follow it.
		if dateRangePrefixRe.MatchString(line) {
			i++
			continue
		}

		if !hasDegreeKeyword(line) {
			i++
			continue
		}

		// Degree names wrap across the PDF's grouped lines; append up to
		// three short continuation fragments.
		fullDegree := line
		j := i + 1
		for j < len(searchLines) && j <= i+degreeContinuationMax {
			next := searchLines[j]
			if degreeBoundaryRe.MatchString(next) {
				break
			}
			if len(next) < 70 && degreeContinuationRe.MatchString(next) {
				fullDegree += " " + next
				j++
			} else {
				break
			}
		}

		entry := types.EducationEntry{Degree: squashSpaces(fullDegree)}

		// The French date-range form supplies year and institution at once.
		for k := i; k < len(searchLines) && k < i+5; k++ {
			if m := frenchDateRangeRe.FindStringSubmatch(searchLines[k]); m != nil {
				entry.Year = m[1] + " - " + m[2]
				if im := frenchDateInstRe.FindStringSubmatch(searchLines[k]); im != nil {
					entry.Institution = strings.TrimSpace(im[1])
				}
				break
			}
		}

		if entry.Year == "" {
			entry.Year = yearTokenRe.FindString(fullDegree)
		}

		if entry.Institution == "" {
			for k := j; k < len(searchLines) && k < j+3; k++ {
				next := searchLines[k]
				if len(next) <= 10 || bareYearLineRe.MatchString(next) {
					continue
				}
				if institutionKeywordRe.MatchString(next) || institutionShapeRe.MatchString(next) {
					entry.Institution = strings.TrimSpace(leadingYearRe.ReplaceAllString(next, ""))
					break
				}
			}
		}

		if entry.Year == "" {
			for k := i + 1; k < len(searchLines) && k < i+4; k++ {
				if y := yearTokenRe.FindString(searchLines[k]); y != "" {
					entry.Year = y
					break
				}
			}
		}

		education = append(education, entry)
		i += educationLineSkipAfter
	}

	return education
}
