package sentiment

import (
	"strings"

	"github.com/seenimoa/sectorwatch/pkg/models"
)

// ------------------------------------------------------------------
// Keyword-based sentiment scorer (offline, deterministic).
// Each keyword contributes at most once: we count distinct keywords
// present in the text, not occurrences. The majority bucket wins and
// the score grows with the number of distinct hits up to a cap.
// ------------------------------------------------------------------

var positiveWords = []string{
	"profit", "growth", "up", "rise", "gain", "surge", "bullish", "positive",
	"beat", "strong", "earnings", "revenue", "high", "record", "boost",
	"rally", "jump", "soar", "climb", "upgrade",
}

var negativeWords = []string{
	"loss", "down", "fall", "decline", "crash", "bearish", "negative",
	"miss", "weak", "drop", "slump", "plunge", "tumble", "collapse",
	"worry", "fear", "downgrade", "cut",
}

const (
	baseScore    = 0.6
	perHitWeight = 0.1
	maxScore     = 0.9
	neutralScore = 0.5
)

// Score labels the combined title and body text. A single hit scores
// 0.7 and each further distinct hit adds 0.1 up to 0.9. Ties,
// including zero hits on both sides, are Neutral at 0.5.
func Score(text, title string) (models.Sentiment, float64) {
	combined := strings.ToLower(title + " " + text)

	positive := countPresent(combined, positiveWords)
	negative := countPresent(combined, negativeWords)

	switch {
	case positive > negative:
		return models.SentimentPositive, confidence(positive)
	case negative > positive:
		return models.SentimentNegative, confidence(negative)
	default:
		return models.SentimentNeutral, neutralScore
	}
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func confidence(hits int) float64 {
	score := baseScore + float64(hits)*perHitWeight
	if score > maxScore {
		return maxScore
	}
	return score
}
