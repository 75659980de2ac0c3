package extract

import (
	"regexp"
	"strings"
)

var (
	// techSkillsHeaderKeys identify a technical-skills section header once a
	// line has been lowercased and stripped of whitespace, which also
	// catches letter-spaced headers.
	techSkillsHeaderKeys = []string{"techskills", "technicalskills", "competencestechniques"}

	// majorSectionAfterSkillsRe ends the technical-skills section. Skill
	// category lines like "Programming Languages:" carry a colon and are
	// deliberately not treated as section ends.
	majorSectionAfterSkillsRe = regexp.MustCompile(`^(certifications|certification|languages|langues|activite|activiteparascolaire|interests|hobbies|softskills)`)

	// bareCRe anchors a lone "C" to a delimiter so it is not matched inside
	// words like "Science".
	bareCRe = regexp.MustCompile(`(?m)\bC[,\s]|\bC$|Languages:\s*C|:\s*C[,\s]|^C,`)

	// wordBoundarySkillRes are the precompiled per-skill matchers for the
	// plain single-word dictionary entries.
	wordBoundarySkillRes = buildSkillRegexes()
)

func buildSkillRegexes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(skillDictionary))
	for _, skill := range skillDictionary {
		if skill == "C++" || skill == "C" || strings.Contains(skill, " ") {
			continue
		}
		res[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return res
}

// techSkillsSection collects the content of the technical-skills section,
// or "" when no such header is found.
func techSkillsSection(text string) string {
	lines := strings.Split(text, "\n")
	var content strings.Builder
	inSection := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		noSpaces := strings.ToLower(stripSpaces(line))

		if !inSection {
			for _, key := range techSkillsHeaderKeys {
				if strings.Contains(noSpaces, key) {
					inSection = true
					break
				}
			}
			continue
		}

		if len(line) < 50 && !strings.Contains(line, ":") && majorSectionAfterSkillsRe.MatchString(noSpaces) {
			break
		}
		if line != "" {
			content.WriteString(line)
			content.WriteString("\n")
		}
	}

	return content.String()
}

// extractSkills returns the deduplicated technical skills found in the
// document, in dictionary scan order. When a technical-skills section is
// located, matching is restricted to it; otherwise the whole text is
// scanned, which raises the false-positive risk.
func extractSkills(text string) []string {
	searchText := techSkillsSection(text)
	if searchText == "" {
		searchText = text
	}

	// Joining broken lines improves matching of skills split by reflow.
	normalized := squashSpaces(strings.ReplaceAll(searchText, "\n", " "))
	normalizedLower := strings.ToLower(normalized)

	skills := make([]string, 0, 16)
	seen := make(map[string]bool)
	add := func(skill string) {
		if !seen[skill] {
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	for _, skill := range skillDictionary {
		switch {
		case skill == "C++":
			// Word-boundary regexes fail on the trailing pluses, so C++ is
			// matched by substring, with "cpp" as an accepted alias.
			if strings.Contains(searchText, "C++") || strings.Contains(normalizedLower, "cpp") {
				add(skill)
			}
		case skill == "C":
			if bareCRe.MatchString(searchText) {
				add(skill)
			}
		case strings.Contains(skill, " "):
			if strings.Contains(normalizedLower, strings.ToLower(skill)) {
				add(skill)
			}
		default:
			if wordBoundarySkillRes[skill].MatchString(normalized) {
				add(skill)
			}
		}
	}

	return skills
}
