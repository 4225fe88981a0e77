package guidance

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goalverse/goalverse/internal/config"
	"github.com/goalverse/goalverse/internal/versesource"
	"go.uber.org/zap"
)

const (
	// Raw matches accumulated before query iteration stops early.
	initialMatchTarget    = 5
	additionalMatchTarget = 10

	// How many curated fallback coordinates are fetched per theme.
	fallbackFetchCount = 3

	// Up to this many passages go into a thematic collection.
	collectionSize = 5
)

// alternateFallbackThemes is the order in which other themes are tried when
// the classified theme's own curated fallback yields nothing.
var alternateFallbackThemes = []string{"guidance", "success", "patience", "prayer"}

// Source is the remote verse retrieval contract the engine depends on.
// Failures from any method are recoverable: the engine logs and moves to the
// next query or fallback tier.
type Source interface {
	Search(ctx context.Context, query, language string) ([]versesource.RawMatch, error)
	PassageByCoordinates(ctx context.Context, collection, line int) (*versesource.RawPassage, error)
	CollectionMetadata(ctx context.Context, collection int) (*versesource.CollectionInfo, error)
	RandomPassage(ctx context.Context) (*versesource.RawPassage, error)
}

// Engine maps free-text goals to relevant verses. All public methods degrade
// to empty or fallback content instead of returning errors: guidance content
// is supplementary and must never block the goal-tracking workflow.
type Engine struct {
	source         Source
	cache          *Cache
	logger         *zap.Logger
	language       string
	initialResults int
	moreResults    int
	now            func() time.Time

	mu   sync.Mutex
	rng  *rand.Rand
	seen map[string]*seenSet

	strategies []resolutionStrategy
}

// seenSet tracks passages already handed out for a goal, by derived id and
// by coordinate pair, so load-more never repeats them.
type seenSet struct {
	ids    map[int]bool
	coords map[Coordinate]bool
}

// resolutionStrategy is one tier of the fallback chain, tried in order until
// one yields a non-empty result.
type resolutionStrategy struct {
	name string
	run  func(ctx context.Context, goalText string, theme *Theme) []MatchResult
}

// NewEngine creates a guidance engine backed by the given verse source.
func NewEngine(source Source, cfg *config.Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		source:         source,
		cache:          NewCache(cfg.CacheTTL),
		logger:         logger,
		language:       cfg.Language,
		initialResults: cfg.InitialResults,
		moreResults:    cfg.MoreResults,
		now:            time.Now,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		seen:           make(map[string]*seenSet),
	}
	e.strategies = []resolutionStrategy{
		{name: "direct-search", run: e.directSearch},
		{name: "thematic-fallback", run: e.thematicFallback},
		{name: "alternate-theme-fallback", run: e.alternateThemeFallback},
	}
	return e
}

// SetRand replaces the random source used for query diversity, fallback
// shuffling and template selection. Used by tests to pin output.
func (e *Engine) SetRand(rng *rand.Rand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = rng
}

// SetClock replaces the cache clock. Used by tests to drive expiry.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// FindPassagesForGoal returns the best-matching verses for a goal text.
// The result is empty only when every search tier and every fallback tier
// yields nothing.
func (e *Engine) FindPassagesForGoal(ctx context.Context, goalText string) []MatchResult {
	goalText = strings.TrimSpace(goalText)
	if goalText == "" {
		return nil
	}

	keywords := ExtractKeywords(goalText)
	theme := ClassifyTheme(keywords)
	queries := e.buildQueries(goalText, keywords, theme)

	raw := e.collectMatches(ctx, queries, initialMatchTarget)
	if len(raw) == 0 {
		results := e.resolveFallback(ctx, goalText, theme)
		e.recordSeen(goalText, results)
		return results
	}

	scored := scoreMatches(goalText, raw)
	window := scored
	if len(window) > e.initialResults {
		window = window[:e.initialResults]
	}

	results := e.assembleMatches(goalText, theme, window)
	e.recordSeen(goalText, results)
	e.logger.Info("Goal guidance lookup",
		zap.String("theme", theme.Name),
		zap.Int("queries", len(queries)),
		zap.Int("raw_matches", len(raw)),
		zap.Int("results", len(results)))
	return results
}

// AdditionalPassagesForGoal returns the next window of matches for a goal,
// skipping every passage already returned for it in this session.
func (e *Engine) AdditionalPassagesForGoal(ctx context.Context, goalText string, currentCount int) []MatchResult {
	goalText = strings.TrimSpace(goalText)
	if goalText == "" {
		return nil
	}
	if currentCount < 0 {
		currentCount = 0
	}

	keywords := ExtractKeywords(goalText)
	theme := ClassifyTheme(keywords)
	queries := e.buildQueries(goalText, keywords, theme)

	raw := e.collectMatches(ctx, queries, additionalMatchTarget)
	if len(raw) == 0 {
		results := e.filterSeen(goalText, e.resolveFallback(ctx, goalText, theme))
		e.recordSeen(goalText, results)
		return results
	}

	scored := scoreMatches(goalText, raw)
	if currentCount >= len(scored) {
		return nil
	}
	window := scored[currentCount:]
	if len(window) > e.moreResults {
		window = window[:e.moreResults]
	}

	window = e.filterSeenMatches(goalText, window)
	results := e.assembleMatches(goalText, theme, window)
	e.recordSeen(goalText, results)
	return results
}

// ThematicCollection returns the cached or freshly assembled collection for a
// theme, or nil for an unknown theme name.
func (e *Engine) ThematicCollection(ctx context.Context, themeName string) *ThematicCollection {
	theme := ThemeByName(strings.ToLower(strings.TrimSpace(themeName)))
	if theme == nil {
		e.logger.Warn("Unknown theme requested", zap.String("theme", themeName))
		return nil
	}

	if collection, ok := e.cache.Get(theme.Name, e.now()); ok {
		return collection
	}

	var passages []Passage
	matches, err := e.source.Search(ctx, theme.SearchTerms, e.language)
	if err != nil {
		e.logger.Warn("Thematic search failed, using curated fallback",
			zap.String("theme", theme.Name), zap.Error(err))
	}
	for _, match := range matches {
		passages = append(passages, e.convert(match, theme))
		if len(passages) >= collectionSize {
			break
		}
	}

	if len(passages) == 0 {
		passages = e.fetchFallbackPassages(ctx, theme)
	}

	collection := &ThematicCollection{
		Theme:              theme.Name,
		Description:        theme.Description,
		Passages:           passages,
		PracticalGuidance:  theme.PracticalGuidance,
		RecommendedActions: theme.RelatedHabits,
	}
	// Never cache an empty collection: a transient source outage should be
	// retried on the next request, not remembered for the full TTL.
	if len(passages) > 0 {
		e.cache.Put(theme.Name, collection, e.now())
	}
	return collection
}

// DailyPassage returns a random verse from the corpus, falling back to the
// curated guidance list when the remote call fails. Nil only when everything
// fails.
func (e *Engine) DailyPassage(ctx context.Context) *Passage {
	theme := DefaultTheme()

	raw, err := e.source.RandomPassage(ctx)
	if err == nil && raw != nil {
		passage := e.convertRaw(raw, theme)
		return &passage
	}
	e.logger.Warn("Random passage fetch failed, using curated fallback", zap.Error(err))

	passages := e.fetchFallbackPassages(ctx, theme)
	if len(passages) == 0 {
		return nil
	}
	return &passages[0]
}

// SmartRecommendation picks a verse for the user's current goals and habits:
// the combined text is classified into a theme and a passage is drawn from
// that theme's collection.
func (e *Engine) SmartRecommendation(ctx context.Context, userGoals, completedHabits []string) *Passage {
	combined := strings.TrimSpace(strings.Join(append(append([]string{}, userGoals...), completedHabits...), " "))
	if combined == "" {
		return e.DailyPassage(ctx)
	}

	theme := ClassifyTheme(ExtractKeywords(combined))
	collection := e.ThematicCollection(ctx, theme.Name)
	if collection != nil && len(collection.Passages) > 0 {
		e.mu.Lock()
		passage := collection.Passages[e.rng.Intn(len(collection.Passages))]
		e.mu.Unlock()
		return &passage
	}

	return e.DailyPassage(ctx)
}

// collectMatches runs the candidate queries strictly in order, merging
// results deduplicated by raw id and stopping once target matches have
// accumulated. Individual query failures are logged and skipped.
func (e *Engine) collectMatches(ctx context.Context, queries []string, target int) []versesource.RawMatch {
	var collected []versesource.RawMatch
	byID := make(map[int]bool)

	for _, query := range queries {
		matches, err := e.source.Search(ctx, query, e.language)
		if err != nil {
			e.logger.Debug("Search query failed",
				zap.String("query", query), zap.Error(err))
			continue
		}
		for _, match := range matches {
			if byID[match.Number] {
				continue
			}
			byID[match.Number] = true
			collected = append(collected, match)
		}
		if len(collected) >= target {
			break
		}
	}

	return collected
}

// resolveFallback walks the ordered resolution strategies until one yields a
// non-empty result.
func (e *Engine) resolveFallback(ctx context.Context, goalText string, theme *Theme) []MatchResult {
	for _, strategy := range e.strategies {
		results := strategy.run(ctx, goalText, theme)
		if len(results) > 0 {
			e.logger.Info("Fallback strategy resolved goal",
				zap.String("strategy", strategy.name),
				zap.String("theme", theme.Name),
				zap.Int("results", len(results)))
			return results
		}
	}
	e.logger.Warn("All fallback strategies exhausted", zap.String("theme", theme.Name))
	return nil
}

// directSearch tries the unmodified goal text as one last search query.
func (e *Engine) directSearch(ctx context.Context, goalText string, theme *Theme) []MatchResult {
	matches, err := e.source.Search(ctx, goalText, e.language)
	if err != nil || len(matches) == 0 {
		return nil
	}

	scored := scoreMatches(goalText, matches)
	if len(scored) > e.initialResults {
		scored = scored[:e.initialResults]
	}
	return e.assembleMatches(goalText, theme, scored)
}

// thematicFallback serves the classified theme's curated coordinates.
func (e *Engine) thematicFallback(ctx context.Context, goalText string, theme *Theme) []MatchResult {
	passages := e.fetchFallbackPassages(ctx, theme)
	return e.assemblePassages(goalText, theme, passages)
}

// alternateThemeFallback retries the curated fallback with a fixed order of
// broader themes.
func (e *Engine) alternateThemeFallback(ctx context.Context, goalText string, theme *Theme) []MatchResult {
	for _, name := range alternateFallbackThemes {
		if name == theme.Name {
			continue
		}
		alternate := ThemeByName(name)
		if alternate == nil {
			continue
		}
		passages := e.fetchFallbackPassages(ctx, alternate)
		if len(passages) > 0 {
			return e.assemblePassages(goalText, alternate, passages)
		}
	}
	return nil
}

// fetchFallbackPassages shuffles the theme's curated coordinates and fetches
// the first few individually. Failed lookups are skipped.
func (e *Engine) fetchFallbackPassages(ctx context.Context, theme *Theme) []Passage {
	if len(theme.Fallback) == 0 {
		return nil
	}

	coords := make([]Coordinate, len(theme.Fallback))
	copy(coords, theme.Fallback)
	e.mu.Lock()
	e.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})
	e.mu.Unlock()

	if len(coords) > fallbackFetchCount {
		coords = coords[:fallbackFetchCount]
	}

	var passages []Passage
	for _, coord := range coords {
		raw, err := e.source.PassageByCoordinates(ctx, coord.Collection, coord.Line)
		if err != nil {
			e.logger.Debug("Fallback passage fetch failed",
				zap.Int("collection", coord.Collection),
				zap.Int("line", coord.Line),
				zap.Error(err))
			continue
		}
		passages = append(passages, e.convertRaw(raw, theme))
	}
	return passages
}

type scoredMatch struct {
	match versesource.RawMatch
	score float64
}

// scoreMatches scores raw matches against the goal and sorts them descending,
// with the raw id as a stable tiebreaker.
func scoreMatches(goalText string, matches []versesource.RawMatch) []scoredMatch {
	scored := make([]scoredMatch, 0, len(matches))
	for _, match := range matches {
		scored = append(scored, scoredMatch{
			match: match,
			score: RelevanceScore(goalText, match.Text),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score == scored[j].score {
			return scored[i].match.Number < scored[j].match.Number
		}
		return scored[i].score > scored[j].score
	})
	return scored
}

// assembleMatches converts scored raw matches into full results.
func (e *Engine) assembleMatches(goalText string, theme *Theme, scored []scoredMatch) []MatchResult {
	results := make([]MatchResult, 0, len(scored))
	for _, entry := range scored {
		passage := e.convert(entry.match, theme)
		results = append(results, e.buildResult(goalText, theme, passage, entry.score))
	}
	return results
}

// assemblePassages wraps already-converted passages, scoring each against the
// goal text.
func (e *Engine) assemblePassages(goalText string, theme *Theme, passages []Passage) []MatchResult {
	results := make([]MatchResult, 0, len(passages))
	for _, passage := range passages {
		score := RelevanceScore(goalText, passage.TextTranslated+" "+passage.Reflection)
		results = append(results, e.buildResult(goalText, theme, passage, score))
	}
	return results
}

// buildResult attaches the per-goal guidance content to a passage.
func (e *Engine) buildResult(goalText string, theme *Theme, passage Passage, score float64) MatchResult {
	steps := make([]string, 0, 5)
	for i := 0; i < len(theme.PracticalGuidance) && i < 2; i++ {
		steps = append(steps, theme.PracticalGuidance[i])
	}
	steps = append(steps,
		fmt.Sprintf("Set a clear timeline for %q and review your progress every week.", goalText),
		fmt.Sprintf("Make dua each morning asking for steadiness with %q.", goalText),
		fmt.Sprintf("Break %q into three smaller tasks and finish the easiest one today.", goalText),
	)

	return MatchResult{
		Passage:              passage,
		RelevanceScore:       score,
		PracticalSteps:       steps,
		PrayerRecommendation: theme.PrayerRecommendation,
		RelatedHabits:        theme.RelatedHabits,
	}
}

func (e *Engine) buildQueries(goalText string, keywords []string, theme *Theme) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return BuildQueries(goalText, keywords, theme, e.rng)
}

func (e *Engine) convert(match versesource.RawMatch, theme *Theme) Passage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return convertMatch(match, theme, e.rng)
}

func (e *Engine) convertRaw(raw *versesource.RawPassage, theme *Theme) Passage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return convertRawPassage(raw, theme, e.rng)
}

// recordSeen marks every returned passage as shown for this goal, keyed by
// derived id and by coordinate pair.
func (e *Engine) recordSeen(goalText string, results []MatchResult) {
	for _, result := range results {
		e.markSeen(goalText, result.Passage.ID,
			Coordinate{result.Passage.CollectionIndex, result.Passage.LineNumber})
	}
}

func (e *Engine) markSeen(goalText string, id int, coord Coordinate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	set, ok := e.seen[goalText]
	if !ok {
		set = &seenSet{ids: make(map[int]bool), coords: make(map[Coordinate]bool)}
		e.seen[goalText] = set
	}
	set.ids[id] = true
	set.coords[coord] = true
}

func (e *Engine) isSeen(goalText string, id int, coord Coordinate) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	set, ok := e.seen[goalText]
	if !ok {
		return false
	}
	return set.ids[id] || set.coords[coord]
}

// filterSeenMatches drops scored matches already returned for this goal.
// Comparison is by derived id and coordinate only: the raw global verse
// number lives in a different keyspace and a low-surah derived id can
// collide with it.
func (e *Engine) filterSeenMatches(goalText string, scored []scoredMatch) []scoredMatch {
	filtered := make([]scoredMatch, 0, len(scored))
	for _, entry := range scored {
		coord := Coordinate{entry.match.SurahNumber, entry.match.NumberInSurah}
		if e.isSeen(goalText, passageID(entry.match.SurahNumber, entry.match.NumberInSurah), coord) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// filterSeen drops assembled results already returned for this goal.
func (e *Engine) filterSeen(goalText string, results []MatchResult) []MatchResult {
	filtered := make([]MatchResult, 0, len(results))
	for _, result := range results {
		coord := Coordinate{result.Passage.CollectionIndex, result.Passage.LineNumber}
		if e.isSeen(goalText, result.Passage.ID, coord) {
			continue
		}
		filtered = append(filtered, result)
	}
	return filtered
}
