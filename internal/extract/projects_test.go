package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjectsArrowBullets(t *testing.T) {
	t.Run("name and technologies split on the dash", func(t *testing.T) {
		text := "PROJETS ACADÉMIQUES\n" +
			"➢ MapFit – React, Node.js\n" +
			"A web app that recommends hiking routes\n" +
			"➢ ChessMate – Python\n"

		got := extractProjects(text)
		require.Len(t, got, 2)
		assert.Equal(t, "MapFit", got[0].Name)
		assert.Equal(t, []string{"React, Node.js"}, got[0].Technologies)
		assert.Equal(t, []string{"A web app that recommends hiking routes"}, got[0].Description)
		assert.Equal(t, "ChessMate", got[1].Name)
		assert.Equal(t, []string{"Python"}, got[1].Technologies)
	})

	t.Run("bare framework bullets are skipped", func(t *testing.T) {
		text := "➢ Laravel\n➢ React\n➢ MapFit – Vue\n"
		got := extractProjects(text)
		require.Len(t, got, 1)
		assert.Equal(t, "MapFit", got[0].Name)
	})

	t.Run("section fragments are filtered out", func(t *testing.T) {
		text := "➢ Membre actif du club informatique – 2022\n➢ MapFit – React\n"
		got := extractProjects(text)
		require.Len(t, got, 1)
		assert.Equal(t, "MapFit", got[0].Name)
	})
}

func TestExtractProjectsEmDash(t *testing.T) {
	text := "COMPLETED PROJECTS\n" +
		"Inventory Management System — Java, MySQL 2023\n" +
		"Desktop tool for tracking warehouse stock levels\n" +
		"Technologies Used: Java, MySQL, JavaFX\n"

	got := extractProjects(text)
	require.Len(t, got, 1)
	assert.Equal(t, "Inventory Management System", got[0].Name)
	assert.Equal(t, "2023", got[0].Year)
	assert.Equal(t, []string{"Java, MySQL 2023", "Java", "MySQL", "JavaFX"}, got[0].Technologies)
	assert.Equal(t, []string{"Desktop tool for tracking warehouse stock levels"}, got[0].Description)
}

func TestExtractProjectsCategoryHeaders(t *testing.T) {
	text := "PROJECTS\n" +
		"JAVA PROGRAMMING PROJECT\n" +
		"Library loan tracker\n" +
		"• Implemented overdue notifications with scheduled jobs\n"

	got := extractProjects(text)
	require.Len(t, got, 1)
	assert.Equal(t, "Library loan tracker", got[0].Name)
	assert.Equal(t, []string{"Implemented overdue notifications with scheduled jobs"}, got[0].Description)
}

func TestExtractProjectsNumbered(t *testing.T) {
	text := "PROJECTS\n" +
		"1. Realtime chat application\n" +
		"2. Weather dashboard with maps\n"

	got := extractProjects(text)
	require.Len(t, got, 2)
	assert.Equal(t, "Realtime chat application", got[0].Name)
	assert.Equal(t, "Weather dashboard with maps", got[1].Name)
}

func TestExtractProjectsStrategyOrder(t *testing.T) {
	// Arrow bullets win even when later strategies would also match.
	text := "PROJECTS\n" +
		"➢ MapFit – React\n" +
		"1. Some numbered thing here\n"

	got := extractProjects(text)
	require.Len(t, got, 1)
	assert.Equal(t, "MapFit", got[0].Name)
}

func TestExtractProjectsNone(t *testing.T) {
	assert.Empty(t, extractProjects("no projects mentioned anywhere"))
}
