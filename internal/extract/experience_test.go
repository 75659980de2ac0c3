package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience(t *testing.T) {
	t.Run("title company duration and bullets", func(t *testing.T) {
		text := "EXPÉRIENCES PROFESSIONNELLES\n" +
			"Software Engineer Intern\n" +
			"Acme Corp\n" +
			"05/2023 - 08/2023\n" +
			"• Built an internal dashboard for monitoring deployments\n" +
			"• Migrated the billing service to PostgreSQL\n" +
			"FORMATION\n"

		got := extractExperience(text)
		require.Len(t, got, 1)
		assert.Equal(t, "Software Engineer Intern", got[0].Title)
		assert.Equal(t, "Acme Corp", got[0].Company)
		assert.Equal(t, "05/2023", got[0].Duration)
		assert.Equal(t, []string{
			"Built an internal dashboard for monitoring deployments",
			"Migrated the billing service to PostgreSQL",
		}, got[0].Description)
	})

	t.Run("second title closes the first entry", func(t *testing.T) {
		text := "WORK EXPERIENCE\n" +
			"Backend Developer\n" +
			"First Company\n" +
			"• Shipped the payments integration end to end\n" +
			"DevOps Consultant\n" +
			"Second Company\n" +
			"• Automated the deployment pipeline with Jenkins\n"

		got := extractExperience(text)
		require.Len(t, got, 2)
		assert.Equal(t, "Backend Developer", got[0].Title)
		assert.Equal(t, "First Company", got[0].Company)
		assert.Equal(t, "DevOps Consultant", got[1].Title)
		assert.Equal(t, "Second Company", got[1].Company)
	})

	t.Run("no section header means no entries", func(t *testing.T) {
		text := "Senior Engineer at a large company\n• Did many things over the years\n"
		assert.Empty(t, extractExperience(text))
	})

	t.Run("soft skill lines are not titles", func(t *testing.T) {
		text := "EXPERIENCE\n" +
			"Leadership\n" +
			"Communication\n" +
			"Network Administrator\n" +
			"Globex\n"

		got := extractExperience(text)
		require.Len(t, got, 1)
		assert.Equal(t, "Network Administrator", got[0].Title)
		assert.Equal(t, "Globex", got[0].Company)
	})

	t.Run("year range duration", func(t *testing.T) {
		text := "EXPERIENCE\nSystems Analyst\nInitech\n2019 - 2021\n"
		got := extractExperience(text)
		require.Len(t, got, 1)
		assert.Equal(t, "2019 - 2021", got[0].Duration)
	})

	t.Run("short bullet fragments are dropped", func(t *testing.T) {
		text := "EXPERIENCE\nCloud Architect\nHooli\n• Terraform\n• Designed the multi-region failover topology\n"
		got := extractExperience(text)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"Designed the multi-region failover topology"}, got[0].Description)
	})
}
