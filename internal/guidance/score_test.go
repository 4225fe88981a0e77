package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevanceScoreIdenticalTextHitsCap(t *testing.T) {
	score := RelevanceScore("patience and prayer", "patience and prayer")
	assert.InDelta(t, maxRelevanceScore, score, 1e-9)
}

func TestRelevanceScorePartialMatch(t *testing.T) {
	// "pray" is a substring of "prayer": partial weight only.
	score := RelevanceScore("pray", "prayer is light")
	assert.InDelta(t, partialMatchWeight, score, 1e-9)
}

func TestRelevanceScoreSemanticMatch(t *testing.T) {
	// "fitness" has no lexical overlap with the passage but expands to
	// "strength": semantic weight only.
	score := RelevanceScore("fitness", "strength of the believer")
	assert.InDelta(t, semanticMatchWeight, score, 1e-9)
}

func TestRelevanceScoreSemanticIgnoresShortTokenInsideExpansion(t *testing.T) {
	// "run" expands to "hasten"; the passage token "has" sits inside that
	// expansion word but carries none of its meaning.
	assert.Zero(t, RelevanceScore("run", "he has a book"))

	// The expansion word inside a passage token still counts.
	score := RelevanceScore("run", "they hasten to good deeds")
	assert.InDelta(t, semanticMatchWeight, score, 1e-9)
}

func TestRelevanceScoreNoOverlap(t *testing.T) {
	assert.Zero(t, RelevanceScore("memorize surah kahf", "they spend in charity"))
}

func TestRelevanceScoreEmptyInputs(t *testing.T) {
	assert.Zero(t, RelevanceScore("", "whatever text"))
	assert.Zero(t, RelevanceScore("a goal here", ""))
}

func TestRelevanceScoreNeverExceedsCap(t *testing.T) {
	goals := []string{
		"patience",
		"Build a daily exercise habit",
		"prayer prayer prayer",
		"success and wealth and health",
	}
	passage := "patience prayer success wealth health exercise habit daily strength"
	for _, goal := range goals {
		score := RelevanceScore(goal, passage)
		assert.GreaterOrEqual(t, score, 0.0, "goal %q", goal)
		assert.LessOrEqual(t, score, maxRelevanceScore, "goal %q", goal)
	}
}

func TestRelevanceScoreDeterministic(t *testing.T) {
	first := RelevanceScore("Improve my patience with family", "And seek help through patience and prayer")
	second := RelevanceScore("Improve my patience with family", "And seek help through patience and prayer")
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0.0)
}

func TestRelevanceScoreOrdersBetterMatchesHigher(t *testing.T) {
	goal := "Build a daily exercise habit"
	onTopic := RelevanceScore(goal, "prepare against them what you can of strength and steadfast effort daily")
	offTopic := RelevanceScore(goal, "and to Allah belongs the dominion of the heavens")
	assert.Greater(t, onTopic, offTopic)
}
