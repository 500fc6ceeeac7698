package datasource

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/sectorwatch/internal/analysis/classify"
	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/analysis/relevance"
	"github.com/seenimoa/sectorwatch/internal/analysis/sentiment"
	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/pkg/models"
	"github.com/seenimoa/sectorwatch/pkg/utils"
)

// Fetcher pulls a single RSS feed and runs every entry through the
// tagging pipeline. Entries that fail any stage (stale, not Indian,
// no symbol in the headline, no sector) are dropped silently except
// for the log line.
type Fetcher struct {
	parser    *gofeed.Parser
	relevance *relevance.Filter
	extractor *extract.Extractor
	log       *logbuf.Buffer

	maxPerFeed int
	window     time.Duration
	now        func() time.Time
}

// NewFetcher wires the pipeline stages together. The log buffer may be
// nil when callers do not surface processing logs.
func NewFetcher(extractor *extract.Extractor, log *logbuf.Buffer, opts Options) *Fetcher {
	opts = opts.withDefaults()
	return &Fetcher{
		parser:     gofeed.NewParser(),
		relevance:  relevance.New(extractor),
		extractor:  extractor,
		log:        log,
		maxPerFeed: opts.MaxPerFeed,
		window:     opts.Window,
		now:        time.Now,
	}
}

// FetchFeed downloads and tags one feed. Network and parse errors are
// returned; an empty but healthy feed yields an empty map and nil error.
func (f *Fetcher) FetchFeed(ctx context.Context, feed Feed) (models.SectorArticles, error) {
	f.logf("processing %s", feed.Name)

	parsed, err := f.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		f.logf("error in %s: %v", feed.Name, err)
		return models.SectorArticles{}, err
	}

	result := f.collect(feed, parsed)
	f.logf("%s: %d articles within window", feed.Name, result.Total())
	return result, nil
}

// collect applies the per-entry pipeline to an already parsed feed.
func (f *Fetcher) collect(feed Feed, parsed *gofeed.Feed) models.SectorArticles {
	result := models.SectorArticles{}
	if parsed == nil || len(parsed.Items) == 0 {
		return result
	}

	items := parsed.Items
	if len(items) > f.maxPerFeed {
		items = items[:f.maxPerFeed]
	}

	cutoff := f.now().Add(-f.window)
	source := feed.DisplayName()

	for _, item := range items {
		title := item.Title
		link := item.Link
		if title == "" || link == "" {
			continue
		}
		description := cleanHTML(item.Description)

		pubDate := publishedTime(item)
		if pubDate != nil && pubDate.Before(cutoff) {
			f.logf("skipping old article: %s", utils.TruncateChars(title, 50))
			continue
		}
		if pubDate == nil {
			f.logf("no date for: %s (including anyway)", utils.TruncateChars(title, 50))
		}

		if !f.relevance.Relevant(title, description) {
			continue
		}

		mentions := f.extractor.Extract(title)
		if len(mentions) == 0 {
			continue
		}

		sector, ok := classify.Sector(title, description)
		if !ok {
			continue
		}

		label, score := sentiment.Score(description, title)

		article := models.Article{
			Title:          title,
			Description:    description,
			URL:            link,
			Source:         source,
			Sentiment:      label,
			SentimentScore: score,
			StockMentions:  mentions,
			Summary:        utils.TruncateChars(description, 150),
			Published:      models.UnknownPublished,
		}
		if pubDate != nil {
			article.Published = utils.FormatPublished(*pubDate)
			article.PublishedAt = *pubDate
		}

		result[sector] = append(result[sector], article)
	}

	return result
}

func (f *Fetcher) logf(format string, args ...any) {
	if f.log != nil {
		f.log.Addf(format, args...)
	}
}

// publishedTime prefers the published timestamp and falls back to the
// updated one. Returns nil when the entry has neither.
func publishedTime(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	return item.UpdatedParsed
}

// cleanHTML strips HTML tags from a string using goquery. Feed
// summaries frequently embed markup and entities.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
