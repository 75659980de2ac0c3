package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-parser/internal/types"
)

const sampleResume = "TAHA\n" +
	"LAMHANDI\n" +
	"Meknès, Morocco\n" +
	"taha@example.com\n" +
	"+212 776-858895\n" +
	"TECH SKILLS\n" +
	"Langages: C, C++, Java, Python\n" +
	"LANGUES\n" +
	"Arabe : langue maternelle\n" +
	"Anglais : courant\n" +
	"DIPLÔMES ET FORMATIONS\n" +
	"Diplôme d'Ingénieur en Transformation Digitale\n" +
	"De 2019 à 2022 École Nationale des Sciences Appliquées\n" +
	"➢ MapFit – React, Node.js\n"

func TestParse(t *testing.T) {
	doc := Parse(sampleResume)

	assert.Equal(t, sampleResume, doc.RawText)
	assert.Equal(t, "Taha Lamhandi", doc.Name)
	assert.Equal(t, "taha@example.com", doc.Email)
	assert.Equal(t, "+212 776-858895", doc.Phone)
	assert.Equal(t, "Morocco", doc.Contact.Country)
	assert.Equal(t, "Meknès, Morocco", doc.Contact.Location)
	assert.Equal(t, []string{"Python", "Java", "C++", "C"}, doc.Skills)
	assert.Equal(t, []string{"English", "Arabic"}, doc.Languages)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "2019 - 2022", doc.Education[0].Year)
	assert.Equal(t, "École Nationale des Sciences Appliquées", doc.Education[0].Institution)

	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "MapFit", doc.Projects[0].Name)
	assert.Equal(t, []string{"React, Node.js"}, doc.Projects[0].Technologies)
}

func TestParseEmptyText(t *testing.T) {
	doc := Parse("")

	assert.Equal(t, types.NameNotFound, doc.Name)
	assert.Empty(t, doc.Email)
	assert.Empty(t, doc.Phone)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Languages)
	assert.NotNil(t, doc.Certifications)
	assert.Empty(t, doc.Skills)
	assert.Empty(t, doc.Experience)
}

func TestParseDeterministic(t *testing.T) {
	first := Parse(sampleResume)
	second := Parse(sampleResume)
	assert.Equal(t, first, second)
}

func TestExtractLanguages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "french section with proficiency marks",
			text: "LANGUES\nArabe : langue maternelle\nFrançais : courant\nAnglais : courant",
			want: []string{"English", "French", "Arabic"},
		},
		{
			name: "fallback to whole text",
			text: "Fluent in English and Spanish, conversational German",
			want: []string{"English", "Spanish", "German"},
		},
		{
			name: "duplicates across variants reported once",
			text: "LANGUAGES\nEnglish (fluent), Anglais",
			want: []string{"English"},
		},
		{
			name: "none recognized",
			text: "no spoken language information",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLanguages(tt.text))
		})
	}
}

func TestExtractCertifications(t *testing.T) {
	t.Run("section lines verbatim", func(t *testing.T) {
		text := "CERTIFICATIONS\nAWS Certified Cloud Practitioner\nOracle Java SE 8 Programmer\n"
		got := extractCertifications(text)
		assert.Equal(t, []string{
			"AWS Certified Cloud Practitioner",
			"Oracle Java SE 8 Programmer",
		}, got)
	})

	t.Run("no section means no certifications", func(t *testing.T) {
		got := extractCertifications("AWS Certified Cloud Practitioner mentioned inline")
		assert.Equal(t, []string{}, got)
	})
}
