package guidance

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestQueries(goalText string, seed int64) []string {
	keywords := ExtractKeywords(goalText)
	theme := ClassifyTheme(keywords)
	return BuildQueries(goalText, keywords, theme, rand.New(rand.NewSource(seed)))
}

func TestBuildQueriesStartsWithRawGoalText(t *testing.T) {
	queries := buildTestQueries("Build a daily exercise habit", 1)
	require.NotEmpty(t, queries)
	assert.Equal(t, "Build a daily exercise habit", queries[0])
}

func TestBuildQueriesShrinkingWindows(t *testing.T) {
	queries := buildTestQueries("Build a daily exercise habit", 1)

	assert.Contains(t, queries, "build daily exercise habit")
	assert.Contains(t, queries, "build daily exercise")
	assert.Contains(t, queries, "build daily")
}

func TestBuildQueriesRemovesStopwords(t *testing.T) {
	queries := buildTestQueries("I want to be more patient with my family", 1)

	// "want", "more" and "with" are stopwords; the keyword windows keep only
	// the meaningful tokens.
	assert.Contains(t, queries, "patient family")
	for _, query := range queries {
		assert.NotEqual(t, "want", query)
		assert.NotEqual(t, "more", query)
	}
}

func TestBuildQueriesIncludesThemeTiers(t *testing.T) {
	queries := buildTestQueries("Build a daily exercise habit", 1)

	// Canonical theme search terms and their words
	assert.Contains(t, queries, "strength effort strive")
	assert.Contains(t, queries, "strength")
	// Goal-term vocabulary mapping
	assert.Contains(t, queries, "strive effort persevere strong strength")
	// Leading keyword combined with the theme name
	assert.Contains(t, queries, "build fitness")
	// Boost phrases for the fitness theme
	assert.Contains(t, queries, "strong and trustworthy")
}

func TestBuildQueriesNonEmptyForGibberish(t *testing.T) {
	queries := buildTestQueries("xyz qqq", 1)

	require.NotEmpty(t, queries)
	assert.Equal(t, "xyz qqq", queries[0])
	// The default theme still contributes broad tiers
	assert.Contains(t, queries, "guidance straight path")
}

func TestBuildQueriesDeduplicated(t *testing.T) {
	queries := buildTestQueries("patience patience patience", 1)

	seen := make(map[string]bool)
	for _, query := range queries {
		assert.NotEmpty(t, strings.TrimSpace(query))
		assert.False(t, seen[query], "duplicate query %q", query)
		seen[query] = true
	}
}

func TestBuildQueriesDeterministicForSeed(t *testing.T) {
	first := buildTestQueries("Memorize one page of Quran", 7)
	second := buildTestQueries("Memorize one page of Quran", 7)
	assert.Equal(t, first, second)
}

func TestBuildQueriesIncludesGenericPhrase(t *testing.T) {
	queries := buildTestQueries("xyz qqq", 3)

	found := false
	for _, phrase := range genericGuidancePhrases {
		for _, query := range queries {
			if query == phrase {
				found = true
			}
		}
	}
	assert.True(t, found, "expected one generic guidance phrase in %v", queries)
}
