package guidance

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// ExtractKeywords tokenizes free text into normalized lowercase word tokens.
// Tokens are alphanumeric, longer than two characters, stripped of
// punctuation, in original order. Stopwords are kept; query building filters
// them later.
func ExtractKeywords(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	keywords := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) > 2 {
			keywords = append(keywords, token)
		}
	}
	return keywords
}
