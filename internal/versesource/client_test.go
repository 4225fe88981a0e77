package versesource

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "en.sahih", "quran-uthmani", 5*time.Second, nil)
}

func TestSearchParsesMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/search/patience/all/en")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": {
				"count": 2,
				"matches": [
					{"number": 160, "text": "Seek help through patience and prayer",
					 "surah": {"number": 2, "name": "البقرة", "englishName": "Al-Baqarah"},
					 "numberInSurah": 153},
					{"number": 493, "text": "Indeed, Allah is with the patient",
					 "surah": {"number": 3, "name": "آل عمران", "englishName": "Aal-Imran"},
					 "numberInSurah": 200}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	matches, err := client.Search(context.Background(), "patience", "en")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, 160, matches[0].Number)
	assert.Equal(t, "Al-Baqarah", matches[0].SurahName)
	assert.Equal(t, 2, matches[0].SurahNumber)
	assert.Equal(t, 153, matches[0].NumberInSurah)
}

func TestSearchDropsMalformedMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": {
				"count": 3,
				"matches": [
					{"number": 0, "text": "missing identifier",
					 "surah": {"number": 2, "englishName": "Al-Baqarah"}, "numberInSurah": 1},
					{"number": 7, "text": "   ",
					 "surah": {"number": 2, "englishName": "Al-Baqarah"}, "numberInSurah": 2},
					{"number": 8, "text": "the only good one",
					 "surah": {"number": 2, "englishName": "Al-Baqarah"}, "numberInSurah": 3}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	matches, err := client.Search(context.Background(), "anything", "en")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 8, matches[0].Number)
}

func TestSearchReturnsErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nothing matching your query was found", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "zzz", "en")
	assert.Error(t, err)
}

func TestPassageByCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/ayah/2:153/editions/quran-uthmani,en.sahih")
		w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": [
				{"number": 160, "text": "يَا أَيُّهَا الَّذِينَ آمَنُوا اسْتَعِينُوا بِالصَّبْرِ وَالصَّلَاةِ",
				 "surah": {"number": 2, "name": "البقرة", "englishName": "Al-Baqarah"},
				 "numberInSurah": 153,
				 "edition": {"identifier": "quran-uthmani", "type": "quran"}},
				{"number": 160, "text": "O you who have believed, seek help through patience and prayer.",
				 "surah": {"number": 2, "name": "البقرة", "englishName": "Al-Baqarah"},
				 "numberInSurah": 153,
				 "edition": {"identifier": "en.sahih", "type": "translation"}}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	passage, err := client.PassageByCoordinates(context.Background(), 2, 153)
	require.NoError(t, err)

	assert.Equal(t, 2, passage.SurahNumber)
	assert.Equal(t, 153, passage.NumberInSurah)
	assert.Equal(t, "Al-Baqarah", passage.SurahName)
	assert.Contains(t, passage.TextTranslated, "patience and prayer")
	assert.NotEmpty(t, passage.TextOriginal)
}

func TestPassageByCoordinatesRejectsEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 200, "status": "OK", "data": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.PassageByCoordinates(context.Background(), 115, 1)
	assert.Error(t, err)
}

func TestCollectionMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/surah/2")
		w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": {"number": 2, "name": "البقرة", "englishName": "Al-Baqarah",
			         "englishNameTranslation": "The Cow", "numberOfAyahs": 286,
			         "revelationType": "Medinan"}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	info, err := client.CollectionMetadata(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Al-Baqarah", info.EnglishName)
	assert.Equal(t, 286, info.NumberOfAyahs)
}

func TestRandomPassageUsesSeededRand(t *testing.T) {
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		w.Write([]byte(`{
			"code": 200, "status": "OK",
			"data": [
				{"number": 1, "text": "بِسْمِ اللَّهِ",
				 "surah": {"number": 1, "englishName": "Al-Faatiha"}, "numberInSurah": 1,
				 "edition": {"identifier": "quran-uthmani", "type": "quran"}},
				{"number": 1, "text": "In the name of Allah",
				 "surah": {"number": 1, "englishName": "Al-Faatiha"}, "numberInSurah": 1,
				 "edition": {"identifier": "en.sahih", "type": "translation"}}
			]
		}`))
	}))
	defer server.Close()

	first := newTestClient(server.URL)
	first.SetRand(rand.New(rand.NewSource(42)))
	second := newTestClient(server.URL)
	second.SetRand(rand.New(rand.NewSource(42)))

	_, err := first.RandomPassage(context.Background())
	require.NoError(t, err)
	_, err = second.RandomPassage(context.Background())
	require.NoError(t, err)

	require.Len(t, requested, 2)
	assert.Equal(t, requested[0], requested[1])
}
