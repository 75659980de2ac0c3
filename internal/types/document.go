// Package types defines the structured data model produced by the CV extraction pipeline.
package types

// NameNotFound is the sentinel value used when no name heuristic matched.
// It is a display string rather than an error because a missing name does
// not fail an otherwise successful extraction.
const NameNotFound = "Name not found"

// Contact holds coarse location information recovered from the CV text.
type Contact struct {
	Country  string `json:"country"`
	Location string `json:"location"`
}

// EducationEntry is one detected degree. Year may be a single year or a
// "start - end" range; Institution may be empty when undetected.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExperienceEntry is one detected job. Description accumulates the bullet
// lines that follow the title until the next title or the section boundary.
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// ProjectEntry is one detected project. All detection strategies produce
// entries of this shape; Year is only set by strategies that recover it.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Year         string   `json:"year,omitempty"`
}

// ExtractedDocument is the root aggregate returned by the pipeline.
// It is structurally complete by construction: every collection is non-nil
// and every scalar has a defined zero/sentinel value, so callers can
// distinguish "processed but found nothing" from a processing failure.
type ExtractedDocument struct {
	RawText        string            `json:"rawText"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Contact        Contact           `json:"contact"`
	Skills         []string          `json:"skills"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []ProjectEntry    `json:"projects"`
	Languages      []string          `json:"languages"`
	Certifications []string          `json:"certifications"`
}

// NewExtractedDocument returns a document with all collections initialized
// and the name set to the not-found sentinel. Extractors overwrite fields
// they succeed on and leave the rest at these defaults.
func NewExtractedDocument(rawText string) *ExtractedDocument {
	return &ExtractedDocument{
		RawText:        rawText,
		Name:           NameNotFound,
		Skills:         []string{},
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Projects:       []ProjectEntry{},
		Languages:      []string{},
		Certifications: []string{},
	}
}
