package guidance

import (
	"math/rand"
	"strings"
)

// queryStopwords is the fixed stopword set applied when keywords are combined
// into search windows. Keyword extraction itself keeps stopwords; only query
// building filters them.
var queryStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "has": true, "had": true,
	"will": true, "would": true, "was": true, "were": true, "are": true,
	"can": true, "could": true, "should": true, "been": true, "but": true,
	"not": true, "you": true, "your": true, "our": true, "out": true,
	"all": true, "any": true, "how": true, "what": true, "when": true,
	"where": true, "who": true, "why": true, "more": true, "most": true,
	"some": true, "such": true, "than": true, "then": true, "them": true,
	"they": true, "their": true, "there": true, "these": true, "those": true,
	"into": true, "about": true, "each": true, "every": true, "want": true,
	"need": true, "like": true, "just": true, "also": true, "very": true,
	"much": true, "many": true, "get": true, "too": true, "own": true,
}

// BuildQueries constructs the ordered candidate query list for a goal, from
// most specific to broadest. The list is deduplicated preserving first
// occurrence and never empty: the raw goal text and the generic phrase tiers
// survive even a goal with no recognizable keywords.
func BuildQueries(goalText string, keywords []string, theme *Theme, rng *rand.Rand) []string {
	var queries []string

	// Tier 1: the raw goal text, highest specificity
	queries = append(queries, strings.TrimSpace(goalText))

	// Tier 2: stopword-filtered keywords in shrinking windows
	filtered := removeStopwords(keywords)
	for _, size := range []int{4, 3, 2} {
		queries = append(queries, joinFirst(filtered, size))
	}

	// Tier 3: leading keyword pair combined with the theme name
	if len(filtered) >= 2 {
		queries = append(queries, filtered[0]+" "+filtered[1]+" "+theme.Name)
	}

	// Tier 4: individual leading keywords, alone and with the theme name
	for i := 0; i < len(filtered) && i < 3; i++ {
		queries = append(queries, filtered[i], filtered[i]+" "+theme.Name)
	}

	// Tier 5: the theme's canonical search terms, then word by word
	queries = append(queries, theme.SearchTerms)
	queries = append(queries, strings.Fields(theme.SearchTerms)...)

	// Tier 6: goal-specific vocabulary mapping, then word by word
	queries = append(queries, theme.GoalTerms)
	queries = append(queries, strings.Fields(theme.GoalTerms)...)

	// Tier 7: one random generic phrase, for variety across repeated calls
	queries = append(queries, genericGuidancePhrases[rng.Intn(len(genericGuidancePhrases))])

	// Tier 8: boost phrases for the hardcoded theme subset
	queries = append(queries, themeBoostPhrases[theme.Name]...)

	return dedupeQueries(queries)
}

func removeStopwords(keywords []string) []string {
	filtered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if !queryStopwords[keyword] {
			filtered = append(filtered, keyword)
		}
	}
	return filtered
}

func joinFirst(words []string, n int) string {
	if n > len(words) {
		n = len(words)
	}
	return strings.Join(words[:n], " ")
}

func dedupeQueries(queries []string) []string {
	seen := make(map[string]bool, len(queries))
	result := make([]string, 0, len(queries))
	for _, query := range queries {
		query = strings.TrimSpace(query)
		if query == "" || seen[query] {
			continue
		}
		seen[query] = true
		result = append(result, query)
	}
	return result
}
