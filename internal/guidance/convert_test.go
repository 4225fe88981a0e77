package guidance

import (
	"math/rand"
	"testing"

	"github.com/goalverse/goalverse/internal/versesource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMatch(t *testing.T) {
	theme := ThemeByName("patience")
	require.NotNil(t, theme)

	match := versesource.RawMatch{
		Number:        160,
		Text:          "seek help through patience and prayer",
		SurahNumber:   2,
		SurahName:     "Al-Baqarah",
		NumberInSurah: 153,
	}
	passage := convertMatch(match, theme, rand.New(rand.NewSource(1)))

	assert.Equal(t, 2153, passage.ID)
	assert.Equal(t, "Al-Baqarah", passage.CollectionName)
	assert.Equal(t, 2, passage.CollectionIndex)
	assert.Equal(t, 153, passage.LineNumber)
	assert.Equal(t, match.Text, passage.TextTranslated)
	assert.Empty(t, passage.TextOriginal)
	assert.True(t, passage.Themes["patience"])
	assert.Equal(t, "Al-Baqarah, verse 153", passage.Context)
	assert.Equal(t, theme.PracticalGuidance, passage.PracticalGuidance)
	assert.Contains(t, theme.ReflectionTemplates, passage.Reflection)
	assert.Contains(t, theme.LifeApplicationTemplates, passage.LifeApplication)
}

func TestConvertRawPassage(t *testing.T) {
	theme := ThemeByName("guidance")
	require.NotNil(t, theme)

	raw := &versesource.RawPassage{
		Number:         6,
		SurahNumber:    1,
		SurahName:      "Al-Fatihah",
		NumberInSurah:  6,
		TextOriginal:   "اهدنا الصراط المستقيم",
		TextTranslated: "Guide us to the straight path",
		AudioURL:       "https://cdn.example/6.mp3",
	}
	passage := convertRawPassage(raw, theme, rand.New(rand.NewSource(1)))

	assert.Equal(t, 1006, passage.ID)
	assert.Equal(t, raw.TextOriginal, passage.TextOriginal)
	assert.Equal(t, raw.TextTranslated, passage.TextTranslated)
	assert.Equal(t, raw.AudioURL, passage.AudioRef)
	assert.True(t, passage.Themes["guidance"])
	assert.Equal(t, "Al-Fatihah, verse 6", passage.Context)
}

func TestConvertDeterministicForSeed(t *testing.T) {
	theme := ThemeByName("success")
	require.NotNil(t, theme)
	match := versesource.RawMatch{
		Number: 3493, Text: "successful indeed are the believers",
		SurahNumber: 23, SurahName: "Al-Mu'minun", NumberInSurah: 1,
	}

	first := convertMatch(match, theme, rand.New(rand.NewSource(9)))
	second := convertMatch(match, theme, rand.New(rand.NewSource(9)))
	assert.Equal(t, first, second)
}

func TestPickTemplate(t *testing.T) {
	assert.Empty(t, pickTemplate(nil, rand.New(rand.NewSource(1))))

	templates := []string{"only one"}
	assert.Equal(t, "only one", pickTemplate(templates, rand.New(rand.NewSource(1))))
}

func TestVerseContextWithoutCollectionName(t *testing.T) {
	assert.Equal(t, "verse 7", verseContext("", 7))
}
