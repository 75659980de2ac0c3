package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-parser/internal/types"
)

var (
	experienceHeaderRe  = regexp.MustCompile(`^(experience|experiences|experien|work experience|professional experience|parcours)`)
	experienceAccentRe  = regexp.MustCompile(`(?i)^EXPÉRIENCE`)
	experienceEndRe     = regexp.MustCompile(`(?i)^(formation|education|compétences|competences|skills|certifications?|langues?|languages?|passions?|hobbies|centres|diplôme)$`)
	experienceEndCapsRe = regexp.MustCompile(`^(FORMATION|EDUCATION|SKILLS|CERTIFICATIONS?)$`)
	shortCapsHeaderRe   = regexp.MustCompile(`^[A-Z\s&]+$`)

	jobTitleKeywordRe = regexp.MustCompile(`(?i)(ingénieur|engineer|développeur|developer|administrateur|administrator|consultant|manager|analyste|analyst|devops|architecte|architect|chef|lead|senior|junior|internship|intern|stage)`)
	softSkillLineRe   = regexp.MustCompile(`(?i)^(leadership|time management|communication|teamwork|work in teams|problem[- ]solving|adaptability|creativity|critical thinking|organization|planning|strong communication)$`)
	continuationRe    = regexp.MustCompile(`(?i)^(and|et)\s`)
	taskVerbPrefixRe  = regexp.MustCompile(`(?i)^(avec|mise|gestion|développement)`)
	presentTenseRe    = regexp.MustCompile(`(?i)^(currently|actuellement)`)
	companyRejectRe   = regexp.MustCompile(`(?i)^(mise|gestion|développement|optimisation|collaboration|implémentation)`)
	companyStartRe    = regexp.MustCompile(`^[A-ZÀ-Ÿ]`)
	monthYearRe       = regexp.MustCompile(`\d{2}/\d{4}`)
	yearRangeRe       = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)
	bulletPrefixRe    = regexp.MustCompile(`^[•-]\s*`)
)

// experienceBounds finds the line range of the experience section. The header
// match folds French accents so "EXPÉRIENCES" and "EXPERIENCES" both hit, and
// a fuzzy "exp ... rience" check catches encoding damage in the É.
func experienceBounds(lines []string) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		folded := strings.ToLower(foldFrenchAccents(line))
		if experienceHeaderRe.MatchString(folded) ||
			(strings.Contains(folded, "exp") && strings.Contains(strings.ToLower(line), "rience")) ||
			experienceAccentRe.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	end = len(lines)
	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		lower := strings.ToLower(line)
		if experienceEndRe.MatchString(lower) || experienceEndCapsRe.MatchString(line) {
			end = i
			break
		}
		if len(line) < 30 && line == strings.ToUpper(line) && shortCapsHeaderRe.MatchString(line) {
			end = i
			break
		}
	}
	return start, end, true
}

// isJobTitle reports whether a line looks like a position title rather than
// a task description.
func isJobTitle(line string) bool {
	if !jobTitleKeywordRe.MatchString(line) {
		return false
	}
	if len(line) <= 8 || len(line) >= 120 {
		return false
	}
	if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
		return false
	}
	if taskVerbPrefixRe.MatchString(line) || presentTenseRe.MatchString(line) {
		return false
	}
	return true
}

// extractExperience returns work experience entries. Without an experience
// section header it returns no entries rather than guessing from the whole
// document, since job keywords appear all over summaries and projects.
func extractExperience(text string) []types.ExperienceEntry {
	lines := splitLines(text)
	experience := []types.ExperienceEntry{}

	start, end, ok := experienceBounds(lines)
	if !ok {
		return experience
	}

	var current *types.ExperienceEntry
	for i := start + 1; i < end; i++ {
		line := lines[i]
		lower := strings.ToLower(line)

		if len(line) < 3 {
			continue
		}
		if strings.Contains(lower, "profil") || strings.Contains(lower, "summary") ||
			(strings.Contains(lower, "avec") && strings.Contains(lower, "expérience")) {
			continue
		}
		if softSkillLineRe.MatchString(line) {
			continue
		}
		if continuationRe.MatchString(line) || len(line) < 8 {
			continue
		}

		if isJobTitle(line) {
			if current != nil {
				experience = append(experience, *current)
			}
			current = &types.ExperienceEntry{
				Title:       squashSpaces(line),
				Description: []string{},
			}

			// Company and duration usually sit on the next few lines.
			for j := i + 1; j < end && j < i+4; j++ {
				next := lines[j]
				if current.Company == "" &&
					len(next) > 3 && len(next) < 50 &&
					!strings.HasPrefix(next, "•") && !strings.HasPrefix(next, "-") &&
					!(next[0] >= '0' && next[0] <= '9') &&
					!strings.Contains(next, "/") &&
					!strings.Contains(strings.ToLower(next), "france") &&
					!companyRejectRe.MatchString(next) &&
					companyStartRe.MatchString(next) {
					current.Company = squashSpaces(next)
				}
				if current.Duration == "" {
					if m := monthYearRe.FindString(next); m != "" {
						current.Duration = m
					} else if m := yearRangeRe.FindString(next); m != "" {
						current.Duration = m
					}
				}
			}
			continue
		}

		if current != nil && (strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")) {
			task := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
			if len(task) > 10 {
				current.Description = append(current.Description, task)
			}
		}
	}

	if current != nil {
		experience = append(experience, *current)
	}

	return experience
}
