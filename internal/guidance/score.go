package guidance

import (
	"math"
	"strings"
)

// Scoring weights. These are tuned heuristic constants; the cap below 1.0
// signals that a lexical match is never a certain one.
const (
	exactMatchWeight    = 1.0
	partialMatchWeight  = 0.7
	semanticMatchWeight = 0.5
	maxRelevanceScore   = 0.95
)

// semanticExpansions maps a goal keyword to corpus vocabulary that expresses
// the same concern. A goal token contributes at most one semantic match.
var semanticExpansions = map[string][]string{
	"fitness":  {"strength", "power", "ability", "body", "strive", "effort"},
	"exercise": {"strive", "effort", "action", "work", "strength"},
	"gym":      {"strength", "effort", "strive"},
	"run":      {"race", "hasten", "strive"},
	"health":   {"healing", "cure", "wholesome", "body", "strong"},
	"sleep":    {"rest", "night", "repose"},
	"food":     {"provision", "sustenance", "wholesome", "eat"},
	"patience": {"persevere", "steadfast", "endure", "constancy", "wait"},
	"patient":  {"persevere", "steadfast", "endure"},
	"prayer":   {"worship", "remembrance", "devotion", "supplicate", "bow", "prostrate"},
	"pray":     {"worship", "remembrance", "call"},
	"quran":    {"book", "recite", "revelation"},
	"success":  {"prosper", "triumph", "attain", "felicity", "victory"},
	"succeed":  {"prosper", "triumph", "attain"},
	"money":    {"wealth", "provision", "sustenance", "charity"},
	"wealth":   {"provision", "sustenance", "bounty"},
	"work":     {"deed", "labor", "effort", "striving"},
	"career":   {"work", "deed", "provision"},
	"study":    {"knowledge", "wisdom", "understand", "learn"},
	"learn":    {"knowledge", "wisdom", "understand", "teach"},
	"family":   {"kin", "parents", "children", "household", "mother", "father"},
	"parents":  {"mother", "father", "kindness"},
	"children": {"offspring", "comfort", "progeny"},
	"anxiety":  {"fear", "worry", "ease", "calm", "peace", "distress"},
	"stress":   {"burden", "ease", "relief", "hardship"},
	"worry":    {"fear", "grieve", "ease"},
	"calm":     {"peace", "rest", "tranquility"},
	"strength": {"power", "might", "firm", "able", "capable"},
	"strong":   {"power", "might", "firm"},
	"habit":    {"constancy", "steadfast", "practice", "deed"},
	"daily":    {"day", "morning", "evening", "constancy"},
	"change":   {"turn", "return", "condition", "hearts"},
	"improve":  {"better", "increase", "grow"},
	"guidance": {"guide", "path", "light", "straight"},
	"decision": {"judgment", "counsel", "wisdom"},
	"read":     {"recite", "book", "knowledge"},
	"write":    {"pen", "book", "record"},
	"weight":   {"balance", "measure", "moderation"},
	"fast":     {"fasting", "abstain", "sawm"},
	"charity":  {"give", "spend", "sadaqah", "alms"},
	"travel":   {"journey", "earth", "land"},
	"debt":     {"repay", "trust", "obligation"},
	"forgive":  {"pardon", "mercy", "overlook"},
}

// RelevanceScore computes the lexical overlap between a goal text and a
// passage text as a value in [0, maxRelevanceScore]. Exact token matches
// weigh 1.0; partial (substring either direction) matches weigh 0.7 for the
// increment beyond exact; semantic-expansion matches weigh 0.5, at most one
// per goal token. The sum is normalized by the goal token count. Deterministic
// and order-independent.
func RelevanceScore(goalText, passageText string) float64 {
	goalKeywords := ExtractKeywords(goalText)
	if len(goalKeywords) == 0 {
		return 0
	}
	passageKeywords := ExtractKeywords(passageText)

	exact := 0
	partial := 0
	semantic := 0

	for _, goalWord := range goalKeywords {
		isExact := false
		isPartial := false
		for _, passageWord := range passageKeywords {
			if goalWord == passageWord {
				isExact = true
				isPartial = true
				break
			}
			if strings.Contains(passageWord, goalWord) || strings.Contains(goalWord, passageWord) {
				isPartial = true
			}
		}
		if isExact {
			exact++
		}
		if isPartial {
			partial++
		}
		if expansions, ok := semanticExpansions[goalWord]; ok {
			if expansionMatches(expansions, passageKeywords) {
				semantic++
			}
		}
	}

	weighted := exactMatchWeight*float64(exact) +
		partialMatchWeight*float64(partial-exact) +
		semanticMatchWeight*float64(semantic)

	score := weighted / float64(len(goalKeywords))
	return math.Min(maxRelevanceScore, score)
}

// expansionMatches reports whether any expansion word appears inside a
// passage token. Only this direction counts: a short passage token contained
// in a longer expansion word says nothing about the passage.
func expansionMatches(expansions, passageKeywords []string) bool {
	for _, expansion := range expansions {
		for _, passageWord := range passageKeywords {
			if strings.Contains(passageWord, expansion) {
				return true
			}
		}
	}
	return false
}
