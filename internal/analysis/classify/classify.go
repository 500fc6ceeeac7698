// Package classify assigns news articles to a sector by scoring their
// text against the sector taxonomy.
package classify

import (
	"strings"

	"github.com/seenimoa/sectorwatch/internal/taxonomy"
)

// Scoring weights: a company-alias hit is the strongest signal, a symbol
// mention is next, a generic keyword weakest.
const (
	companyWeight = 10
	symbolWeight  = 5
	keywordWeight = 3
)

// MinScore is the lowest score accepted as a confident classification.
const MinScore = 3

// Sector returns the best-matching sector for the article text, or
// ("", false) when no sector reaches MinScore. Ties break toward the
// first sector in taxonomy order, so results are deterministic.
func Sector(title, description string) (string, bool) {
	text := strings.ToLower(title + " " + description)

	best := ""
	bestScore := 0
	for _, profile := range taxonomy.Sectors {
		score := scoreProfile(text, profile)
		if score > bestScore {
			best = profile.Name
			bestScore = score
		}
	}

	if bestScore >= MinScore {
		return best, true
	}
	return "", false
}

func scoreProfile(text string, profile taxonomy.SectorProfile) int {
	score := 0
	for _, company := range profile.Companies {
		if strings.Contains(text, company) {
			score += companyWeight
		}
	}
	for _, keyword := range profile.Keywords {
		if strings.Contains(text, keyword) {
			score += keywordWeight
		}
	}
	for _, symbol := range profile.Symbols {
		if strings.Contains(text, strings.ToLower(symbol)) {
			score += symbolWeight
		}
	}
	return score
}
