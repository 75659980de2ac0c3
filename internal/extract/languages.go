package extract

import "regexp"

// languageVariantRes precompiles a word-boundary matcher per variant, in
// table order.
var languageVariantRes = buildLanguageRegexes()

func buildLanguageRegexes() [][]*regexp.Regexp {
	res := make([][]*regexp.Regexp, len(languageTable))
	for i, lang := range languageTable {
		for _, variant := range lang.Variants {
			res[i] = append(res[i], regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(variant)+`\b`))
		}
	}
	return res
}

// extractLanguages returns canonical English names for every spoken language
// recognized in the document. Matching prefers the languages section but
// falls back to the whole text, since many résumés list languages inline
// with proficiency marks that defeat section detection.
func extractLanguages(text string) []string {
	lines := splitLines(text)
	searchText, ok := sectionText(lines, languageSynonyms)
	if !ok {
		searchText = text
	}

	languages := []string{}
	seen := make(map[string]bool)

	for i, lang := range languageTable {
		for _, re := range languageVariantRes[i] {
			if re.MatchString(searchText) {
				if !seen[lang.Canonical] {
					seen[lang.Canonical] = true
					languages = append(languages, lang.Canonical)
				}
				break
			}
		}
	}

	return languages
}
