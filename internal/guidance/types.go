package guidance

// Passage is a single retrievable unit of source text with translation and
// guidance metadata. Identity is (CollectionIndex, LineNumber); ID is derived
// from those and never changes. Passages are not mutated after conversion.
type Passage struct {
	ID                int
	CollectionName    string
	CollectionIndex   int
	LineNumber        int
	TextOriginal      string
	TextTranslated    string
	Themes            map[string]bool
	Reflection        string
	PracticalGuidance []string
	Context           string
	LifeApplication   string
	AudioRef          string
}

// MatchResult wraps a passage with its relevance to a specific goal and the
// guidance content assembled for that goal. Ephemeral, never persisted.
type MatchResult struct {
	Passage              Passage
	RelevanceScore       float64
	PracticalSteps       []string
	PrayerRecommendation string
	RelatedHabits        []string
}

// ThematicCollection bundles up to five passages for a theme together with the
// theme's guidance content. Collections are cached with a TTL.
type ThematicCollection struct {
	Theme              string
	Description        string
	Passages           []Passage
	PracticalGuidance  []string
	RecommendedActions []string
}

// passageID derives the numeric passage key from its coordinates.
func passageID(collection, line int) int {
	return collection*1000 + line
}
