package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-parser/internal/types"
)

// Project formatting varies more across résumés than any other section, so
// detection is split into independent strategies tried in a fixed order.
// Each strategy owns one observed layout; the first one producing entries
// wins and later strategies never run.
type detectionStrategy interface {
	name() string
	tryExtract(lines []string, start, end int) []types.ProjectEntry
}

var projectStrategies = []detectionStrategy{
	arrowBulletStrategy{},
	emDashStrategy{},
	categoryHeaderStrategy{},
	inlineTechStrategy{},
	numberedStrategy{},
}

var (
	spacedProjectHeaderRe = regexp.MustCompile(`(?i)C\s+O\s+M\s+P.*P\s+R\s+O\s+J\s+E\s+C\s+T`)
	realisationsHeaderRe  = regexp.MustCompile(`(?i)PRINCIPALES RÉALISATIONS`)

	projectSectionEndRe     = regexp.MustCompile(`(?i)^(expérience|experience|éducation|education|compétences|comp|skills|langues|languages|certifications?|formation)`)
	projectSectionEndCapsRe = regexp.MustCompile(`(?i)^(EXPERIENCES|EXPÉRIENCES|EDUCATION|SKILLS|FORMATION|COMP)`)

	camelCaseRe = regexp.MustCompile(`[a-z][A-Z]`)

	frameworkNameRe   = regexp.MustCompile(`(?i)^(Java|JavaScript|PHP|Python|C|C\+\+|Ruby|Laravel|React|Vue|Angular|MySQL|MongoDB|Tailwind|Bootstrap)(\s*\(|$)`)
	frameworkPrefixRe = regexp.MustCompile(`(?i)^(Laravel|React|Vue|Angular|MERN stack|Tailwind CSS,?\s*Bootstrap|Tailwind|Bootstrap)`)
	enCoursRe         = regexp.MustCompile(`\(en cours[^)]*\)`)
	dashSplitRe       = regexp.MustCompile(`[–-]`)

	arrowDescRejectRe = regexp.MustCompile(`(?i)^(langues|arabe|français|anglais|langages|frameworks|bases de données|compétences|diplômes|atouts|centres|activités|football|natation|voyage|coding|membre)\s*:?`)
	yearLineRe        = regexp.MustCompile(`^\d{4}`)
	categoryColonRe   = regexp.MustCompile(`^[A-Z][a-z]+\s*:`)
	personalDetailRe  = regexp.MustCompile(`(?i)célibataire|nationale|\d+ ans|meknès|édition \d{4}`)
	ellipsisLineRe    = regexp.MustCompile(`^\w+\s+\.\.\.\s+\w+$`)
	arrowCloseNextRe  = regexp.MustCompile(`(?i)^(compétences|langages|frameworks|bases de données|atouts|activités|centres)`)
	arrowCloseCurRe   = regexp.MustCompile(`(?i)^(activités|centres|atouts)`)

	softSkillPrefixRe = regexp.MustCompile(`(?i)^(Effective Communication|Critical Thinking|Problem-solving|Teamwork|Leadership|Time Management)\s{2,}`)
	emDashSkipRe      = regexp.MustCompile(`(?i)^(effective|critical|problem|teamwork|leadership|time management|communication|programming|web development|databases|version control|operating systems|technologies|languages|javascript|python|java|php|html|css|mysql|git|linux|windows|other competencies|structures|oriented|certifications?|certified|certificate|oracle|aws|azure|google cloud|activité|secrétaire|cloud|infrastructure|foundations|associate)`)
	projectNounRe     = regexp.MustCompile(`(?i)(application|système|system|game|jeu|gestion|management|platform|plateforme|assistant|tool|outil)`)
	yearTokenAnyRe    = regexp.MustCompile(`\d{4}`)
	emDashStopRe      = regexp.MustCompile(`^(TECHSKILLS|TECH|SKILLS|COMPETENCES|CERTIFICATIONS|LANGUAGES|LANGUES|ACTIVITE)`)
	techLabelRe       = regexp.MustCompile(`(?i)(Technologies?\s*(?:Used)?\s*|Tech\s+Stack\s*):`)
	softSkillExactRe  = regexp.MustCompile(`(?i)^(leadership|time management|communication|teamwork|problem[- ]solving|adaptability|creativity|critical thinking)$`)
	standaloneLangRe  = regexp.MustCompile(`(?i)^(Python|JavaScript|Java|C\+\+|C#|PHP|Ruby|Go|Rust|Swift|Kotlin)$`)
	categoryLabelRe   = regexp.MustCompile(`(?i)(Programming|Web Development|Databases|Version Control|Operating Systems|Technologies|Languages)`)

	typedProjectHeaderRe  = regexp.MustCompile(`(?i)^[A-Z\s]+(PROGRAMMING|NETWORKING|WEB|MOBILE|DATA|DATABASE)\s+PROJECT$`)
	plainProjectHeaderRe  = regexp.MustCompile(`(?i)^[A-Z\s]+PROJECT$`)
	addressWordRe         = regexp.MustCompile(`(?i)\b(rue|street|avenue|road|blvd|boulevard|ave|st\.|drive|lane)\b`)
	postalCodeRe          = regexp.MustCompile(`\d{4,5}`)
	houseNumberRe         = regexp.MustCompile(`^\d+\s*,`)
	cityPostalRe          = regexp.MustCompile(`,\s*\w+\s+\d{4,5}$`)
	phoneLineRe           = regexp.MustCompile(`^\d{10}`)
	webContactRe          = regexp.MustCompile(`(?i)^(www\.|http|linkedin|github)`)
	inlineTechRe          = regexp.MustCompile(`^[A-ZÀ-Ÿ].{20,150}\s{2,}.+,\s*.+`)
	wideGapRe             = regexp.MustCompile(`\s{2,}`)
	numberedRe            = regexp.MustCompile(`^\d+[\.)]\s+`)
	projectRejectPrefixRe = regexp.MustCompile(`^(tools and|within|and\s|et\s|avec\s|pour\s|dans\s|using|the\s|le\s|la\s|les\s)`)
)

// projectSectionStart locates the project section header, or -1.
func projectSectionStart(lines []string) int {
	for i, line := range lines {
		lower := strings.ToLower(line)
		noSpaces := stripSpaces(lower)
		short := len(line) < 50 || len(noSpaces) < 20
		if !short {
			continue
		}
		switch {
		case strings.Contains(lower, "projet"), strings.Contains(lower, "project"),
			strings.Contains(lower, "realisation"), strings.Contains(lower, "achievements"),
			strings.Contains(lower, "accomplishments"):
			return i
		case noSpaces == "projects" || noSpaces == "projets":
			return i
		case strings.Contains(noSpaces, "completedprojects"),
			strings.Contains(noSpaces, "completedproject"),
			strings.Contains(noSpaces, "compeleted"):
			return i
		case realisationsHeaderRe.MatchString(line), spacedProjectHeaderRe.MatchString(line):
			return i
		}
	}
	return -1
}

// projectSectionEnd finds where the project section stops after start.
func projectSectionEnd(lines []string, start int) int {
	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		lower := strings.ToLower(line)
		if (len(line) < 40 && projectSectionEndRe.MatchString(lower)) ||
			projectSectionEndCapsRe.MatchString(line) ||
			(strings.Contains(lower, "experiences") && strings.Contains(lower, "internship")) {
			return i
		}
	}
	return len(lines)
}

// extractProjects tries each detection strategy in order and keeps the first
// non-empty result, filtered of known junk.
func extractProjects(text string) []types.ProjectEntry {
	lines := splitLines(text)
	start := projectSectionStart(lines)
	end := len(lines)
	if start >= 0 {
		end = projectSectionEnd(lines, start)
	}

	for _, strategy := range projectStrategies {
		if entries := strategy.tryExtract(lines, start, end); len(entries) > 0 {
			return filterProjects(entries)
		}
	}
	return []types.ProjectEntry{}
}

// filterProjects drops entries whose names are section fragments, sentence
// tails, or club memberships rather than project names.
func filterProjects(entries []types.ProjectEntry) []types.ProjectEntry {
	kept := []types.ProjectEntry{}
	for _, e := range entries {
		lower := strings.ToLower(e.Name)
		if projectRejectPrefixRe.MatchString(lower) {
			continue
		}
		if strings.Contains(lower, "agile development") ||
			strings.Contains(lower, "experiences & internships") ||
			strings.Contains(lower, "internship at") ||
			strings.Contains(lower, "awaiting") ||
			strings.Contains(lower, "mobile-first components") ||
			strings.Contains(lower, "bootstrap's mobile") {
			continue
		}
		if strings.Contains(lower, "membre") || strings.Contains(lower, "member") ||
			strings.Contains(lower, "hult prize") || strings.Contains(lower, "édition") {
			continue
		}
		if strings.Contains(e.Name, "➢") {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// arrowBulletStrategy handles "➢ Name – Tech, Tech" bullets. These appear
// outside any labelled section, so the whole document is scanned.
type arrowBulletStrategy struct{}

func (arrowBulletStrategy) name() string { return "arrow-bullet" }

func (arrowBulletStrategy) tryExtract(lines []string, _, _ int) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	var current *types.ProjectEntry

	closeCurrent := func() {
		if current != nil {
			projects = append(projects, *current)
			current = nil
		}
	}

	for i, line := range lines {
		if strings.Contains(line, "➢") && strings.Contains(line, "–") {
			dash := strings.Index(line, "–")
			before := strings.TrimSpace(strings.TrimPrefix(line[:dash], "➢"))
			before = strings.TrimSpace(strings.TrimLeft(before, "➢ "))
			after := strings.TrimSpace(line[dash+len("–"):])

			words := len(strings.Fields(before))
			if len(before) > 10 || words >= 2 || camelCaseRe.MatchString(before) {
				closeCurrent()
				current = &types.ProjectEntry{
					Name:         before,
					Description:  []string{},
					Technologies: []string{},
				}
				if after != "" {
					current.Technologies = append(current.Technologies, after)
				}
			}
			continue
		}

		if strings.Contains(line, "➢") {
			afterArrow := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "➢ "))
			// Arrow followed by a bare framework name is a skills bullet,
			// not a project.
			if len(afterArrow) < 20 &&
				(len(strings.Fields(afterArrow)) == 1 || frameworkNameRe.MatchString(afterArrow)) {
				continue
			}
			// The dash may have wrapped onto a following line.
			for j := i + 1; j < len(lines) && j <= i+2; j++ {
				cont := lines[j]
				if !strings.Contains(cont, "–") && !strings.Contains(cont, "- ") {
					continue
				}
				cleaned := frameworkPrefixRe.ReplaceAllString(afterArrow, "")
				cleaned = strings.TrimSpace(enCoursRe.ReplaceAllString(cleaned, ""))
				if len(cleaned) <= 10 {
					break
				}
				full := cleaned + " " + cont
				parts := dashSplitRe.Split(full, -1)
				if len(parts) < 2 {
					break
				}
				name := strings.TrimSpace(parts[0])
				tech := strings.TrimSpace(parts[len(parts)-1])
				if len(name) > 15 && !frameworkNameRe.MatchString(name) {
					closeCurrent()
					current = &types.ProjectEntry{
						Name:         name,
						Description:  []string{},
						Technologies: []string{tech},
					}
				}
				break
			}
			continue
		}

		if current != nil && arrowCloseCurRe.MatchString(line) {
			closeCurrent()
			continue
		}

		if current != nil && len(line) > 15 &&
			!arrowDescRejectRe.MatchString(line) &&
			!yearLineRe.MatchString(line) &&
			!categoryColonRe.MatchString(line) &&
			!personalDetailRe.MatchString(line) &&
			!ellipsisLineRe.MatchString(line) {
			current.Description = append(current.Description, line)
		}

		if current != nil && i+1 < len(lines) && arrowCloseNextRe.MatchString(lines[i+1]) {
			closeCurrent()
		}
	}

	closeCurrent()
	return projects
}

// emDashStrategy handles "Project Name — metadata" headers followed by
// description and "Technologies Used:" lines, confined to the project section.
type emDashStrategy struct{}

func (emDashStrategy) name() string { return "em-dash" }

func (emDashStrategy) tryExtract(lines []string, start, end int) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if start < 0 {
		return projects
	}

	for i := start + 1; i < end; i++ {
		line := lines[i]
		if !strings.Contains(line, "—") || strings.Contains(line, "➢") {
			continue
		}

		dash := strings.Index(line, "—")
		name := strings.TrimSpace(line[:dash])
		metadata := strings.TrimSpace(line[dash+len("—"):])

		// A soft-skills column sometimes bleeds into the name cell.
		name = strings.TrimSpace(softSkillPrefixRe.ReplaceAllString(name, ""))
		if emDashSkipRe.MatchString(name) {
			continue
		}

		year := yearTokenAnyRe.FindString(metadata)
		if year == "" && i+1 < end && yearLineRe.MatchString(lines[i+1]) {
			year = yearTokenAnyRe.FindString(lines[i+1])
		}

		if len(name) < 15 || len(name) >= 80 || !projectNounRe.MatchString(name) || year == "" {
			continue
		}

		entry := types.ProjectEntry{
			Name:         name,
			Year:         year,
			Description:  []string{},
			Technologies: []string{},
		}
		if metadata != "" {
			entry.Technologies = append(entry.Technologies, metadata)
		}

		for j := i + 1; j < end && j < i+10; j++ {
			next := lines[j]
			if strings.Contains(next, "—") && yearTokenAnyRe.MatchString(next) {
				break
			}
			// Checked before the section-stop guard: "Technologies Used:"
			// uppercases to a TECH prefix and would otherwise end the scan.
			if m := techLabelRe.FindStringIndex(next); m != nil {
				afterColon := next[m[1]:]
				for _, t := range strings.Split(afterColon, ",") {
					t = strings.TrimSpace(t)
					if t != "" && !yearLineRe.MatchString(t) {
						entry.Technologies = append(entry.Technologies, t)
					}
				}
				continue
			}
			if emDashStopRe.MatchString(strings.ToUpper(stripSpaces(next))) {
				break
			}
			if softSkillExactRe.MatchString(next) || standaloneLangRe.MatchString(next) {
				continue
			}
			if strings.Contains(next, ":") && categoryLabelRe.MatchString(next) {
				continue
			}
			if len(next) > 15 {
				entry.Description = append(entry.Description, next)
			}
		}

		projects = append(projects, entry)
	}

	return projects
}

// categoryHeaderStrategy handles "JAVA PROGRAMMING PROJECT" style headers
// where the project name sits on the following line.
type categoryHeaderStrategy struct{}

func (categoryHeaderStrategy) name() string { return "category-header" }

func isAddressLine(line string) bool {
	return addressWordRe.MatchString(line) || postalCodeRe.MatchString(line) ||
		houseNumberRe.MatchString(line) || cityPostalRe.MatchString(line)
}

func isContactLine(line string) bool {
	return phoneLineRe.MatchString(line) || strings.Contains(line, "@") ||
		webContactRe.MatchString(line)
}

func (categoryHeaderStrategy) tryExtract(lines []string, start, end int) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if start < 0 {
		return projects
	}

	var current *types.ProjectEntry
	for i := start + 1; i < end; i++ {
		line := lines[i]

		if typedProjectHeaderRe.MatchString(line) || plainProjectHeaderRe.MatchString(line) {
			if i+1 >= end {
				continue
			}
			next := lines[i+1]
			if len(next) <= 5 || len(next) >= 80 || isAddressLine(next) || isContactLine(next) {
				continue
			}
			if current != nil {
				projects = append(projects, *current)
			}
			current = &types.ProjectEntry{
				Name:         next,
				Description:  []string{},
				Technologies: []string{},
			}
			i++
			continue
		}

		if current != nil && strings.HasPrefix(line, "•") {
			desc := strings.TrimSpace(strings.TrimPrefix(line, "•"))
			if len(desc) > 15 {
				current.Description = append(current.Description, desc)
			}
		}
	}
	if current != nil {
		projects = append(projects, *current)
	}
	return projects
}

// inlineTechStrategy handles rows where a wide column gap separates the
// project title from a comma list of technologies.
type inlineTechStrategy struct{}

func (inlineTechStrategy) name() string { return "inline-tech" }

func (inlineTechStrategy) tryExtract(lines []string, start, end int) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if start < 0 {
		return projects
	}

	var current *types.ProjectEntry
	for i := start + 1; i < end; i++ {
		line := lines[i]

		if inlineTechRe.MatchString(line) {
			parts := wideGapRe.Split(line, -1)
			if len(parts) < 2 {
				continue
			}
			if current != nil {
				projects = append(projects, *current)
			}
			current = &types.ProjectEntry{
				Name:         strings.TrimSpace(parts[0]),
				Description:  []string{},
				Technologies: []string{},
			}
			for _, t := range strings.Split(strings.Join(parts[1:], " "), ",") {
				t = strings.TrimSpace(t)
				if t != "" {
					current.Technologies = append(current.Technologies, t)
				}
			}
			continue
		}

		if current != nil && strings.HasPrefix(line, "•") {
			desc := strings.TrimSpace(strings.TrimPrefix(line, "•"))
			if len(desc) > 15 {
				current.Description = append(current.Description, desc)
			}
		}
	}
	if current != nil {
		projects = append(projects, *current)
	}
	return projects
}

// numberedStrategy is the last resort: "1. Project name" lists.
type numberedStrategy struct{}

func (numberedStrategy) name() string { return "numbered" }

func (numberedStrategy) tryExtract(lines []string, start, end int) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if start < 0 {
		return projects
	}

	for i := start + 1; i < end; i++ {
		line := lines[i]
		if !numberedRe.MatchString(line) {
			continue
		}
		name := strings.TrimSpace(numberedRe.ReplaceAllString(line, ""))
		if len(name) > 10 {
			projects = append(projects, types.ProjectEntry{
				Name:         name,
				Description:  []string{},
				Technologies: []string{},
			})
		}
	}
	return projects
}
