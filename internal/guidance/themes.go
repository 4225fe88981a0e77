package guidance

import "strings"

// ClassifyTheme scores every registered theme against the keyword tokens and
// returns the strictly best match. A synonym hit counts 1.0; a token found as
// a substring of the theme's practical-guidance text counts 0.5 (a weak
// secondary signal). Ties keep the earlier-registered theme. With no signal
// at all the default "guidance" theme is returned, which callers treat as a
// trigger for broader search rather than a topical match.
func ClassifyTheme(keywords []string) *Theme {
	best := DefaultTheme()
	bestScore := 0.0

	for _, theme := range Themes() {
		score := scoreTheme(theme, keywords)
		if score > bestScore {
			bestScore = score
			best = theme
		}
	}

	if bestScore == 0 {
		return DefaultTheme()
	}
	return best
}

func scoreTheme(theme *Theme, keywords []string) float64 {
	score := 0.0
	for _, keyword := range keywords {
		if themeHasSynonym(theme, keyword) {
			score += 1.0
		}
		if guidanceContains(theme, keyword) {
			score += 0.5
		}
	}
	return score
}

func themeHasSynonym(theme *Theme, keyword string) bool {
	for _, synonym := range theme.Synonyms {
		if synonym == keyword {
			return true
		}
	}
	return false
}

func guidanceContains(theme *Theme, keyword string) bool {
	for _, guidance := range theme.PracticalGuidance {
		if strings.Contains(strings.ToLower(guidance), keyword) {
			return true
		}
	}
	return false
}
