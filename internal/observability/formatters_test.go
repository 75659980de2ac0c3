package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-parser/internal/matcher"
	"github.com/jonathan/cv-parser/internal/types"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewExtractedDocument("raw")
	doc.Name = "Taha Lamhandi"
	doc.Email = "taha@example.com"
	doc.Phone = "+212 776-858895"
	doc.Contact.Location = "Meknès, Morocco"
	doc.Skills = []string{"Python", "React"}
	doc.Languages = []string{"French", "English"}
	doc.Education = []types.EducationEntry{
		{Degree: "Diplôme d'Ingénieur", Year: "2019 - 2022"},
	}
	doc.Experience = []types.ExperienceEntry{
		{Title: "Software Engineer Intern", Company: "Acme Corp", Description: []string{}},
	}
	doc.Projects = []types.ProjectEntry{
		{Name: "MapFit", Description: []string{}, Technologies: []string{}},
	}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED DOCUMENT")
	assert.Contains(t, output, "Taha Lamhandi")
	assert.Contains(t, output, "taha@example.com")
	assert.Contains(t, output, "Meknès, Morocco")
	assert.Contains(t, output, "Python, React")
	assert.Contains(t, output, "French, English")
	assert.Contains(t, output, "2019 - 2022")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "MapFit")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDocument_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewExtractedDocument("raw")
	doc.Name = strings.Repeat("x", 200)

	p.PrintDocument(doc)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+10, "box line too wide: %q", line)
	}
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &matcher.PredictResponse{
		Success:   true,
		TotalJobs: 250,
		Algorithm: "ML Enhanced (TF-IDF + Skill Matching)",
		Matches: []matcher.JobMatch{
			{JobTitle: "Backend Engineer", Company: "Acme", Location: "Paris", MatchScore: 87.5},
			{JobTitle: "Data Analyst", Company: "Globex", MatchScore: 63.2},
		},
	}

	p.PrintMatches(resp)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCHES")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "87.5%")
	assert.Contains(t, output, "Globex")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches(&matcher.PredictResponse{Success: true})

	assert.Contains(t, buf.String(), "No matches returned")
}

func TestPrintConversionWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConversionWarnings([]string{"page 2 has no text items"})

	assert.Contains(t, buf.String(), "CONVERSION WARNINGS")
	assert.Contains(t, buf.String(), "page 2")
}

func TestPrintConversionWarnings_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConversionWarnings(nil)

	assert.Empty(t, buf.String())
}
