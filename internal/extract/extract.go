// Package extract implements the heuristic résumé field extractors. Every
// extractor is best-effort: a field that cannot be recognized comes back as
// its zero value or an empty slice, never an error. Heuristics cover English
// and French documents.
package extract

import "github.com/jonathan/cv-parser/internal/types"

// Parse runs every field extractor over the raw text and assembles the
// structured document. Extractors are independent; a miss in one never
// affects another. Parse is deterministic for a given input.
func Parse(text string) *types.ExtractedDocument {
	doc := types.NewExtractedDocument(text)

	doc.Name = extractName(text)
	doc.Email = extractEmail(text)
	doc.Phone = extractPhone(text)
	doc.Contact = extractContact(text)
	doc.Skills = extractSkills(text)
	doc.Education = extractEducation(text)
	doc.Experience = extractExperience(text)
	doc.Projects = extractProjects(text)
	doc.Languages = extractLanguages(text)
	doc.Certifications = extractCertifications(text)

	return doc
}
