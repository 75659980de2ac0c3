package extract

// extractCertifications returns the certification section's lines verbatim.
// Certification titles are free-form vendor strings, so no normalization is
// attempted, and without a section header nothing is returned.
func extractCertifications(text string) []string {
	lines := splitLines(text)
	sectionBody, ok := sectionText(lines, certificationSynonyms)
	if !ok {
		return []string{}
	}

	certs := []string{}
	for _, line := range splitLines(sectionBody) {
		certs = append(certs, line)
	}
	return certs
}
