// Package relevance decides whether a news item belongs on an
// India-market dashboard at all. An article qualifies if its text
// mentions an Indian market term or if the symbol extractor finds at
// least one listed stock in the title.
package relevance

import (
	"strings"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
)

var indiaKeywords = []string{
	"india", "indian", "mumbai", "delhi", "bangalore",
	"nse", "bse", "sensex", "nifty", "rupee",
	"rbi", "sebi", "lic", "tata", "reliance", "adani",
}

// Filter reports whether the article is relevant to Indian markets.
type Filter struct {
	extractor *extract.Extractor
}

func New(extractor *extract.Extractor) *Filter {
	return &Filter{extractor: extractor}
}

// Relevant checks the combined title and description for Indian market
// terms, then falls back to symbol extraction from the title. Articles
// from Indian feeds that name neither are dropped upstream.
func (f *Filter) Relevant(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, kw := range indiaKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return len(f.extractor.Extract(title)) > 0
}
