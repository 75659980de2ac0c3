// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CVDocument")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// CVDocumentSchema returns the extraction schema for CV/résumé documents.
// It mirrors the fields the heuristic extractors produce, so LLM output can
// be mapped onto the same document type.
func CVDocumentSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CVDocument",
		Description: `You are an expert CV parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract structured information from a raw CV or résumé.
The document may be in English or French.
IMPORTANT: Preserve the exact wording from the original text. Use "" for missing string fields and [] for missing lists.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Candidate's full name as written on the CV",
				Required:    true,
			},
			{
				Name:        "email",
				Type:        "\"string\"",
				Description: "Email address",
				Required:    false,
			},
			{
				Name:        "phone",
				Type:        "\"string\"",
				Description: "Phone number, verbatim including country code",
				Required:    false,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "City and country, e.g. 'Meknès, Morocco'",
				Required:    false,
			},
			{
				Name:        "technicalSkills",
				Type:        "[\"string\"]",
				Description: "Programming languages, frameworks, tools - one skill per entry",
				Required:    true,
			},
			{
				Name:        "softSkills",
				Type:        "[\"string\"]",
				Description: "Soft skills such as leadership or teamwork",
				Required:    false,
			},
			{
				Name:        "experience",
				Type:        "[{\"title\": \"string\", \"company\": \"string\", \"duration\": \"string\", \"responsibilities\": [\"string\"]}]",
				Description: "Work experience entries with their bullet points verbatim",
				Required:    false,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\": \"string\", \"institution\": \"string\", \"year\": \"string\"}]",
				Description: "Education entries; year may be a range like '2019 - 2022'",
				Required:    false,
			},
			{
				Name:        "projects",
				Type:        "[{\"name\": \"string\", \"description\": [\"string\"], \"technologies\": [\"string\"], \"year\": \"string\"}]",
				Description: "Personal and academic projects",
				Required:    false,
			},
			{
				Name:        "languages",
				Type:        "[\"string\"]",
				Description: "Spoken languages, canonical English names (e.g. 'French' for 'Français')",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[\"string\"]",
				Description: "Certification titles verbatim",
				Required:    false,
			},
		},
	}
}
