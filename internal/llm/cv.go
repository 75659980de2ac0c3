// Package llm - cv.go maps LLM extraction output onto the document type
// produced by the heuristic extractors.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cv-parser/internal/types"
)

// cvResponse is the wire shape of the CVDocumentSchema output.
type cvResponse struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Location        string         `json:"location"`
	TechnicalSkills []string       `json:"technicalSkills"`
	SoftSkills      []string       `json:"softSkills"`
	Experience      []cvExperience `json:"experience"`
	Education       []cvEducation  `json:"education"`
	Projects        []cvProject    `json:"projects"`
	Languages       []string       `json:"languages"`
	Certifications  []string       `json:"certifications"`
}

type cvExperience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type cvEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type cvProject struct {
	Name         string   `json:"name"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Year         string   `json:"year"`
}

// ParseCV runs the LLM-based CV extraction over raw document text. It is the
// fallback path for documents the heuristic extractors handle poorly, and
// returns the same document type so callers can use either interchangeably.
func ParseCV(ctx context.Context, client Client, rawText string) (*types.ExtractedDocument, error) {
	prompt := BuildExtractionPrompt(CVDocumentSchema(), rawText)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("LLM CV extraction failed: %w", err)
	}

	var resp cvResponse
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse LLM CV response: %w", err)
	}

	return resp.toDocument(rawText), nil
}

// toDocument converts the wire response into the shared document type.
// Technical skills come first, then soft skills; the heuristic path only
// knows technical skills, so ordering keeps the two paths comparable.
func (r *cvResponse) toDocument(rawText string) *types.ExtractedDocument {
	doc := types.NewExtractedDocument(rawText)

	if name := strings.TrimSpace(r.Name); name != "" {
		doc.Name = name
	}
	doc.Email = strings.TrimSpace(r.Email)
	doc.Phone = strings.TrimSpace(r.Phone)
	doc.Contact.Location = strings.TrimSpace(r.Location)

	doc.Skills = append(doc.Skills, r.TechnicalSkills...)
	doc.Skills = append(doc.Skills, r.SoftSkills...)

	for _, e := range r.Experience {
		entry := types.ExperienceEntry{
			Title:       e.Title,
			Company:     e.Company,
			Duration:    e.Duration,
			Description: e.Responsibilities,
		}
		if entry.Description == nil {
			entry.Description = []string{}
		}
		doc.Experience = append(doc.Experience, entry)
	}

	for _, e := range r.Education {
		doc.Education = append(doc.Education, types.EducationEntry{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		})
	}

	for _, p := range r.Projects {
		entry := types.ProjectEntry{
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
			Year:         p.Year,
		}
		if entry.Description == nil {
			entry.Description = []string{}
		}
		if entry.Technologies == nil {
			entry.Technologies = []string{}
		}
		doc.Projects = append(doc.Projects, entry)
	}

	doc.Languages = append(doc.Languages, r.Languages...)
	doc.Certifications = append(doc.Certifications, r.Certifications...)

	return doc
}
