package guidance

import (
	"fmt"
	"math/rand"

	"github.com/goalverse/goalverse/internal/versesource"
)

// convertMatch turns a raw search hit into a Passage tagged with the theme.
// The reflection and life-application sentences are chosen uniformly at
// random from the theme's template lists, so repeated conversions of the same
// verse may read differently; relevance scoring stays deterministic.
func convertMatch(match versesource.RawMatch, theme *Theme, rng *rand.Rand) Passage {
	return Passage{
		ID:                passageID(match.SurahNumber, match.NumberInSurah),
		CollectionName:    match.SurahName,
		CollectionIndex:   match.SurahNumber,
		LineNumber:        match.NumberInSurah,
		TextTranslated:    match.Text,
		Themes:            map[string]bool{theme.Name: true},
		Reflection:        pickTemplate(theme.ReflectionTemplates, rng),
		PracticalGuidance: theme.PracticalGuidance,
		Context:           verseContext(match.SurahName, match.NumberInSurah),
		LifeApplication:   pickTemplate(theme.LifeApplicationTemplates, rng),
	}
}

// convertRawPassage turns a directly fetched verse into a Passage.
func convertRawPassage(raw *versesource.RawPassage, theme *Theme, rng *rand.Rand) Passage {
	return Passage{
		ID:                passageID(raw.SurahNumber, raw.NumberInSurah),
		CollectionName:    raw.SurahName,
		CollectionIndex:   raw.SurahNumber,
		LineNumber:        raw.NumberInSurah,
		TextOriginal:      raw.TextOriginal,
		TextTranslated:    raw.TextTranslated,
		Themes:            map[string]bool{theme.Name: true},
		Reflection:        pickTemplate(theme.ReflectionTemplates, rng),
		PracticalGuidance: theme.PracticalGuidance,
		Context:           verseContext(raw.SurahName, raw.NumberInSurah),
		LifeApplication:   pickTemplate(theme.LifeApplicationTemplates, rng),
		AudioRef:          raw.AudioURL,
	}
}

func pickTemplate(templates []string, rng *rand.Rand) string {
	if len(templates) == 0 {
		return ""
	}
	return templates[rng.Intn(len(templates))]
}

func verseContext(surahName string, line int) string {
	if surahName == "" {
		return fmt.Sprintf("verse %d", line)
	}
	return fmt.Sprintf("%s, verse %d", surahName, line)
}
