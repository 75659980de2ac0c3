package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-parser/internal/types"
)

var emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// phonePatterns are tried in order; the first pattern producing any match
// wins and no cross-validation happens between patterns.
var phonePatterns = []*regexp.Regexp{
	// International with separators: +212 776-858895
	regexp.MustCompile(`\+\d{1,3}\s?\d{3}[-.\s]?\d{3}[-.\s]?\d{3,5}`),
	// US style with optional parens: +1 (555) 123-4567
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	// French spaced pairs: 07 06 70 65 51
	regexp.MustCompile(`\b\d{2}\s\d{2}\s\d{2}\s\d{2}\s\d{2}\b`),
	// French without spaces: 0706706551
	regexp.MustCompile(`\b0\d{9}\b`),
}

// locationRe matches an address-like "<words>, <words>" line.
var locationRe = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s-]+,\s*[A-Za-zÀ-ÿ\s]+$`)

// locationWindow is how many leading lines are scanned for an address line.
const locationWindow = 15

// extractEmail returns the first email-shaped token in the text, or "".
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone returns the first match of the first phone pattern that
// matches anywhere in the text, or "".
func extractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractCountry scans the country table in order; the first entry with any
// keyword present as a case-insensitive substring wins. Table order decides
// ties, not where the keyword appears in the text.
func extractCountry(text string) string {
	lower := strings.ToLower(text)
	for _, country := range countryTable {
		for _, kw := range country.Keywords {
			if strings.Contains(lower, kw) {
				return country.Name
			}
		}
	}
	return ""
}

// extractLocation returns the first address-like line among the first 15
// lines of the document, verbatim.
func extractLocation(text string) string {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines) && i < locationWindow; i++ {
		line := strings.TrimSpace(lines[i])
		if line != "" && locationRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractContact assembles the coarse contact block.
func extractContact(text string) types.Contact {
	return types.Contact{
		Country:  extractCountry(text),
		Location: extractLocation(text),
	}
}
