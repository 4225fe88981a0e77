package versesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// totalVerses is the number of verses in the corpus; the remote API accepts a
// global verse number in [1, totalVerses] for direct lookups.
const totalVerses = 6236

// Client wraps HTTP access to an alquran.cloud-compatible verse API.
// Failures are plain errors; callers in the guidance engine treat them as
// recoverable and move on to the next query or fallback tier.
type Client struct {
	httpClient         *http.Client
	baseURL            string
	translationEdition string
	originalEdition    string
	rng                *rand.Rand
	logger             *zap.Logger
}

// NewClient creates a new verse source client
func NewClient(baseURL, translationEdition, originalEdition string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:            baseURL,
		translationEdition: translationEdition,
		originalEdition:    originalEdition,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:             logger,
	}
}

// SetRand replaces the random source used by RandomPassage. Used by tests to
// pin output.
func (c *Client) SetRand(rng *rand.Rand) {
	c.rng = rng
}

// Search queries the API for verses matching the given text. Matches that
// fail boundary validation are logged and dropped.
func (c *Client) Search(ctx context.Context, query, language string) ([]RawMatch, error) {
	endpoint := fmt.Sprintf("%s/search/%s/all/%s",
		c.baseURL, url.PathEscape(query), url.PathEscape(language))

	var resp searchResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	matches := make([]RawMatch, 0, len(resp.Data.Matches))
	for _, wire := range resp.Data.Matches {
		match := wire.toRawMatch()
		if !match.Valid() {
			c.logger.Debug("Dropping malformed search match",
				zap.Int("number", match.Number),
				zap.String("query", query))
			continue
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// PassageByCoordinates fetches a single verse by surah and ayah number, in
// both the original and the translated edition.
func (c *Client) PassageByCoordinates(ctx context.Context, collection, line int) (*RawPassage, error) {
	reference := fmt.Sprintf("%d:%d", collection, line)
	return c.fetchEditions(ctx, reference)
}

// CollectionMetadata fetches metadata for a surah.
func (c *Client) CollectionMetadata(ctx context.Context, collection int) (*CollectionInfo, error) {
	endpoint := fmt.Sprintf("%s/surah/%d", c.baseURL, collection)

	var resp surahResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Number == 0 {
		return nil, fmt.Errorf("surah %d not found", collection)
	}

	return &resp.Data, nil
}

// RandomPassage fetches a uniformly random verse from the corpus.
func (c *Client) RandomPassage(ctx context.Context) (*RawPassage, error) {
	number := c.rng.Intn(totalVerses) + 1
	return c.fetchEditions(ctx, fmt.Sprintf("%d", number))
}

// fetchEditions resolves a verse reference against both configured editions
// in a single request.
func (c *Client) fetchEditions(ctx context.Context, reference string) (*RawPassage, error) {
	endpoint := fmt.Sprintf("%s/ayah/%s/editions/%s,%s",
		c.baseURL, url.PathEscape(reference), c.originalEdition, c.translationEdition)

	var resp ayahEditionsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no editions returned for verse %s", reference)
	}

	passage := &RawPassage{}
	for _, ayah := range resp.Data {
		if passage.Number == 0 {
			passage.Number = ayah.Number
			passage.SurahNumber = ayah.Surah.Number
			passage.NumberInSurah = ayah.NumberInSurah
			passage.SurahName = ayah.Surah.EnglishName
			if passage.SurahName == "" {
				passage.SurahName = ayah.Surah.Name
			}
		}
		if ayah.Edition.Identifier == c.originalEdition {
			passage.TextOriginal = ayah.Text
		} else {
			passage.TextTranslated = ayah.Text
		}
		if ayah.Audio != "" {
			passage.AudioURL = ayah.Audio
		}
	}

	if !passage.Valid() {
		return nil, fmt.Errorf("malformed passage for verse %s", reference)
	}

	return passage, nil
}

// getJSON performs a GET request and decodes the JSON response
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
