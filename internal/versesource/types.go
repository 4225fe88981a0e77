package versesource

import "strings"

// RawMatch is a single search hit from the remote verse API, prior to
// conversion into a guidance passage. Number is the verse's global numeric
// identifier and is unique across the whole corpus.
type RawMatch struct {
	Number        int
	Text          string
	SurahNumber   int
	SurahName     string
	NumberInSurah int
}

// Valid reports whether the match carries enough data to be usable.
func (m RawMatch) Valid() bool {
	return m.Number > 0 &&
		m.SurahNumber > 0 &&
		m.NumberInSurah > 0 &&
		strings.TrimSpace(m.Text) != ""
}

// RawPassage is a verse fetched directly by coordinates, carrying both the
// original text and the translation.
type RawPassage struct {
	Number         int
	SurahNumber    int
	SurahName      string
	NumberInSurah  int
	TextOriginal   string
	TextTranslated string
	AudioURL       string
}

// Valid reports whether the passage carries enough data to be usable.
func (p RawPassage) Valid() bool {
	return p.SurahNumber > 0 &&
		p.NumberInSurah > 0 &&
		strings.TrimSpace(p.TextTranslated) != ""
}

// CollectionInfo describes a surah.
type CollectionInfo struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Wire shapes for the alquran.cloud JSON envelope. Everything crossing the
// boundary is decoded into these and converted to the strict types above;
// entries that fail validation are dropped by the client, never passed on.

type envelope struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

type searchResponse struct {
	envelope
	Data struct {
		Count   int         `json:"count"`
		Matches []wireMatch `json:"matches"`
	} `json:"data"`
}

type wireMatch struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Surah  struct {
		Number      int    `json:"number"`
		Name        string `json:"name"`
		EnglishName string `json:"englishName"`
	} `json:"surah"`
	NumberInSurah int `json:"numberInSurah"`
}

func (w wireMatch) toRawMatch() RawMatch {
	name := w.Surah.EnglishName
	if name == "" {
		name = w.Surah.Name
	}
	return RawMatch{
		Number:        w.Number,
		Text:          w.Text,
		SurahNumber:   w.Surah.Number,
		SurahName:     name,
		NumberInSurah: w.NumberInSurah,
	}
}

type wireAyah struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Audio  string `json:"audio"`
	Surah  struct {
		Number      int    `json:"number"`
		Name        string `json:"name"`
		EnglishName string `json:"englishName"`
	} `json:"surah"`
	NumberInSurah int `json:"numberInSurah"`
	Edition       struct {
		Identifier string `json:"identifier"`
		Type       string `json:"type"`
	} `json:"edition"`
}

type ayahEditionsResponse struct {
	envelope
	Data []wireAyah `json:"data"`
}

type surahResponse struct {
	envelope
	Data CollectionInfo `json:"data"`
}
