// Package datasource fetches Indian market news from RSS feeds and
// runs each entry through the analysis pipeline: relevance filtering,
// headline symbol extraction, sector classification, and sentiment
// scoring. Feeds are polled concurrently and results merged into a
// per-sector article map, fronted by a TTL cache.
package datasource

import (
	"errors"
	"time"
)

// ErrNoFeeds is returned when an aggregator is built without sources.
var ErrNoFeeds = errors.New("no feeds configured")

const (
	// MaxArticlesPerFeed caps how deep into each feed we read.
	MaxArticlesPerFeed = 20

	// FreshnessWindow drops entries older than this. Wider than a
	// calendar day so weekend lulls and slow feeds still surface.
	FreshnessWindow = 50 * time.Hour

	// FeedTimeout bounds a single feed fetch end to end.
	FeedTimeout = 30 * time.Second
)

// Options tunes the fetch pipeline. Zero values fall back to the
// package defaults above.
type Options struct {
	MaxPerFeed  int
	Window      time.Duration
	FeedTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxPerFeed <= 0 {
		o.MaxPerFeed = MaxArticlesPerFeed
	}
	if o.Window <= 0 {
		o.Window = FreshnessWindow
	}
	if o.FeedTimeout <= 0 {
		o.FeedTimeout = FeedTimeout
	}
	return o
}
