// Package models defines the shared data structures for sectorwatch:
// tagged news articles, per-sector reports, and the reference company table.
package models

import "time"

// Sentiment is the label assigned to an article by the keyword scorer.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// UnknownPublished is used when a feed entry carries no parsable timestamp.
const UnknownPublished = "Unknown"

// Article is a single tagged news item. Immutable once emitted by the
// feed fetcher; it lives for one cache cycle.
type Article struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	Sentiment      Sentiment `json:"sentiment_label"`
	SentimentScore float64   `json:"sentiment"`
	StockMentions  []string  `json:"stock_mentions"`
	Summary        string    `json:"summary"`
	Published      string    `json:"published_date"`
	PublishedAt    time.Time `json:"published_at,omitempty"`
}

// SectorArticles maps a classified sector name to its articles.
// Produced per feed and merged across feeds by the aggregator.
type SectorArticles map[string][]Article

// Merge appends all articles from other into sa, sector by sector.
func (sa SectorArticles) Merge(other SectorArticles) {
	for sector, articles := range other {
		sa[sector] = append(sa[sector], articles...)
	}
}

// Total returns the article count across all sectors.
func (sa SectorArticles) Total() int {
	n := 0
	for _, articles := range sa {
		n += len(articles)
	}
	return n
}
