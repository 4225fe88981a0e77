package guidance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyThemeFitness(t *testing.T) {
	keywords := ExtractKeywords("Build a daily exercise habit")
	theme := ClassifyTheme(keywords)

	require.NotNil(t, theme)
	assert.Equal(t, "fitness", theme.Name)
}

func TestClassifyThemeDefaultsToGuidance(t *testing.T) {
	theme := ClassifyTheme(ExtractKeywords("xyz qqq"))
	require.NotNil(t, theme)
	assert.Equal(t, DefaultThemeName, theme.Name)

	theme = ClassifyTheme(nil)
	require.NotNil(t, theme)
	assert.Equal(t, DefaultThemeName, theme.Name)
}

func TestClassifyThemeTieKeepsRegistrationOrder(t *testing.T) {
	// "patience" hits the patience synonym table, "improve" hits change's.
	// Both score 1.0; patience is registered first and must win.
	theme := ClassifyTheme(ExtractKeywords("Improve patience"))
	require.NotNil(t, theme)
	assert.Equal(t, "patience", theme.Name)
}

func TestClassifyThemeTable(t *testing.T) {
	tests := []struct {
		goal     string
		expected string
	}{
		{"Pray Fajr on time every day", "prayer"},
		{"Call my parents every weekend", "family"},
		{"Stop feeling so anxious about work deadlines", "anxiety"},
		{"Pass my final exam and get the promotion", "success"},
		{"Sleep eight hours and fix my diet", "health"},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			theme := ClassifyTheme(ExtractKeywords(tt.goal))
			require.NotNil(t, theme)
			assert.Equal(t, tt.expected, theme.Name)
		})
	}
}

func TestThemeRegistryShape(t *testing.T) {
	all := Themes()
	require.NotEmpty(t, all)

	// The default theme must exist and be registered last so every other
	// theme gets a chance to outscore it.
	assert.Equal(t, DefaultThemeName, all[len(all)-1].Name)

	seen := make(map[string]bool)
	for _, theme := range all {
		assert.False(t, seen[theme.Name], "duplicate theme %s", theme.Name)
		seen[theme.Name] = true

		assert.NotEmpty(t, theme.Synonyms, "%s has no synonyms", theme.Name)
		assert.GreaterOrEqual(t, len(theme.PracticalGuidance), 2,
			"%s needs at least two guidance items for practical steps", theme.Name)
		assert.NotEmpty(t, theme.PrayerRecommendation, "%s has no prayer", theme.Name)
		assert.NotEmpty(t, theme.RelatedHabits, "%s has no habits", theme.Name)
		assert.NotEmpty(t, theme.SearchTerms, "%s has no search terms", theme.Name)
		assert.NotEmpty(t, theme.Fallback, "%s has no fallback coordinates", theme.Name)
		assert.LessOrEqual(t, len(theme.Fallback), 5, "%s fallback list too long", theme.Name)
		assert.NotEmpty(t, theme.ReflectionTemplates, "%s has no reflections", theme.Name)
		assert.NotEmpty(t, theme.LifeApplicationTemplates, "%s has no applications", theme.Name)

		for _, synonym := range theme.Synonyms {
			assert.Equal(t, strings.ToLower(synonym), synonym,
				"%s synonym %q must be lowercase", theme.Name, synonym)
		}
	}
}

func TestThemeByName(t *testing.T) {
	assert.NotNil(t, ThemeByName("fitness"))
	assert.Nil(t, ThemeByName("astronomy"))
	assert.Equal(t, DefaultThemeName, DefaultTheme().Name)
}
