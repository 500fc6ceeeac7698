package datasource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

func testFetcher(t *testing.T, now time.Time) *Fetcher {
	t.Helper()
	table, err := refdata.Load()
	if err != nil {
		t.Fatalf("load reference table: %v", err)
	}
	f := NewFetcher(extract.New(table), nil, Options{})
	f.now = func() time.Time { return now }
	return f
}

func TestFeedDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"economic_times_market", "Economic Times Market"},
		{"moneycontrol", "Moneycontrol"},
		{"cnbc_market", "Cnbc Market"},
	}
	for _, tt := range tests {
		got := Feed{Name: tt.name}.DisplayName()
		if got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Test Markets Feed</title>
<item>
  <title>RELIANCE shares surge on strong Q1 earnings</title>
  <link>https://example.com/reliance-q1</link>
  <description>Reliance Industries reported record quarterly profit growth driven by its energy and retail businesses, beating street estimates comfortably across all segments.</description>
  <pubDate>Mon, 01 Sep 2025 08:00:00 GMT</pubDate>
</item>
<item>
  <title>TCS stock gains after large deal win</title>
  <link>https://example.com/tcs-deal</link>
  <description>Tata Consultancy Services signed a multi-year deal.</description>
  <pubDate>Fri, 29 Aug 2025 08:00:00 GMT</pubDate>
</item>
<item>
  <title>Sensex ends higher amid global cues</title>
  <link>https://example.com/sensex</link>
  <description>Benchmark indices closed in the green.</description>
  <pubDate>Mon, 01 Sep 2025 09:00:00 GMT</pubDate>
</item>
<item>
  <title>Dow Jones slides as Wall Street retreats</title>
  <link>https://example.com/dow</link>
  <description>US equities closed lower.</description>
  <pubDate>Mon, 01 Sep 2025 07:00:00 GMT</pubDate>
</item>
<item>
  <title>INFY shares jump on buyback plan</title>
  <link>https://example.com/infy-buyback</link>
  <description>&lt;b&gt;Infosys&lt;/b&gt; board approved a share buyback.</description>
</item>
</channel></rss>`

func TestCollectPipeline(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	f := testFetcher(t, now)

	parsed, err := gofeed.NewParser().ParseString(testFeedXML)
	if err != nil {
		t.Fatalf("parse test feed: %v", err)
	}

	result := f.collect(Feed{Name: "test_markets"}, parsed)

	if got := result.Total(); got != 2 {
		t.Fatalf("expected 2 articles, got %d: %v", got, result)
	}

	oil := result["Oil & Gas"]
	if len(oil) != 1 {
		t.Fatalf("expected 1 Oil & Gas article, got %d", len(oil))
	}
	reliance := oil[0]
	if reliance.Sentiment != models.SentimentPositive {
		t.Errorf("expected Positive sentiment, got %s", reliance.Sentiment)
	}
	if reliance.Source != "Test Markets" {
		t.Errorf("expected source %q, got %q", "Test Markets", reliance.Source)
	}
	if len(reliance.StockMentions) == 0 || reliance.StockMentions[0] != "RELIANCE" {
		t.Errorf("expected RELIANCE mention, got %v", reliance.StockMentions)
	}
	if len([]rune(reliance.Summary)) > 150 {
		t.Errorf("summary exceeds 150 chars: %d", len([]rune(reliance.Summary)))
	}
	if reliance.Published != "2025-09-01 08:00" {
		t.Errorf("unexpected published date %q", reliance.Published)
	}

	it := result["IT"]
	if len(it) != 1 {
		t.Fatalf("expected 1 IT article, got %d", len(it))
	}
	infy := it[0]
	if infy.Published != models.UnknownPublished {
		t.Errorf("expected Unknown published date, got %q", infy.Published)
	}
	if strings.Contains(infy.Description, "<b>") {
		t.Errorf("HTML not stripped from description: %q", infy.Description)
	}

	// The TCS article is stale, the Sensex one has no headline symbol,
	// and the Dow Jones one is not Indian news.
	for _, articles := range result {
		for _, a := range articles {
			if strings.Contains(a.Title, "TCS") || strings.Contains(a.Title, "Sensex") || strings.Contains(a.Title, "Dow") {
				t.Errorf("article should have been dropped: %q", a.Title)
			}
		}
	}
}

func TestCollectCapsEntries(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	f := testFetcher(t, now)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Bulk</title>`)
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, `<item><title>RELIANCE shares surge, gain %d percent</title><link>https://example.com/%d</link><description>Reliance Industries profit growth update.</description><pubDate>Mon, 01 Sep 2025 08:00:00 GMT</pubDate></item>`, i, i)
	}
	sb.WriteString(`</channel></rss>`)

	parsed, err := gofeed.NewParser().ParseString(sb.String())
	if err != nil {
		t.Fatalf("parse bulk feed: %v", err)
	}

	result := f.collect(Feed{Name: "bulk"}, parsed)
	if got := result.Total(); got > MaxArticlesPerFeed {
		t.Errorf("expected at most %d articles, got %d", MaxArticlesPerFeed, got)
	}
}

func TestOptionsConfigureFetcher(t *testing.T) {
	table, err := refdata.Load()
	if err != nil {
		t.Fatalf("load reference table: %v", err)
	}
	extractor := extract.New(table)

	f := NewFetcher(extractor, nil, Options{MaxPerFeed: 5, Window: 10 * time.Hour})
	if f.maxPerFeed != 5 {
		t.Errorf("maxPerFeed = %d, want 5", f.maxPerFeed)
	}
	if f.window != 10*time.Hour {
		t.Errorf("window = %v, want 10h", f.window)
	}

	f.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Bulk</title>`)
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, `<item><title>RELIANCE shares surge, gain %d percent</title><link>https://example.com/%d</link><description>Reliance Industries profit growth update.</description><pubDate>Mon, 01 Sep 2025 08:00:00 GMT</pubDate></item>`, i, i)
	}
	sb.WriteString(`</channel></rss>`)

	parsed, err := gofeed.NewParser().ParseString(sb.String())
	if err != nil {
		t.Fatalf("parse bulk feed: %v", err)
	}
	if got := f.collect(Feed{Name: "bulk"}, parsed).Total(); got != 5 {
		t.Errorf("expected the configured cap of 5 articles, got %d", got)
	}

	a := NewAggregator(extractor, DefaultFeeds, nil, Options{FeedTimeout: 5 * time.Second})
	if a.feedTimeout != 5*time.Second {
		t.Errorf("feedTimeout = %v, want 5s", a.feedTimeout)
	}
	// Knobs left unset keep their defaults.
	if a.fetcher.maxPerFeed != MaxArticlesPerFeed || a.fetcher.window != FreshnessWindow {
		t.Errorf("unset options should default, got cap %d window %v",
			a.fetcher.maxPerFeed, a.fetcher.window)
	}
}

func TestNewsCacheTTL(t *testing.T) {
	current := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	calls := 0

	c := &NewsCache{
		fetch: func(context.Context) (models.SectorArticles, error) {
			calls++
			return models.SectorArticles{"IT": {{Title: "x"}}}, nil
		},
		ttl: DefaultCacheTTL,
		now: func() time.Time { return current },
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := c.Get(ctx); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 fetch within TTL, got %d", calls)
	}

	current = current.Add(DefaultCacheTTL + time.Second)
	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected refetch after expiry, got %d calls", calls)
	}
}

func TestNewsCacheServesStaleOnError(t *testing.T) {
	current := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	healthy := true

	c := &NewsCache{
		fetch: func(context.Context) (models.SectorArticles, error) {
			if !healthy {
				return nil, errors.New("all feeds down")
			}
			return models.SectorArticles{"Banking": {{Title: "y"}}}, nil
		},
		ttl: DefaultCacheTTL,
		now: func() time.Time { return current },
	}

	ctx := context.Background()
	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("initial get: %v", err)
	}

	healthy = false
	current = current.Add(DefaultCacheTTL + time.Second)

	data, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("expected stale snapshot, got error: %v", err)
	}
	if data.Total() != 1 {
		t.Errorf("expected stale data with 1 article, got %d", data.Total())
	}
}

func TestNewsCacheRefreshForcesFetch(t *testing.T) {
	calls := 0
	c := &NewsCache{
		fetch: func(context.Context) (models.SectorArticles, error) {
			calls++
			return models.SectorArticles{}, nil
		},
		ttl: DefaultCacheTTL,
		now: time.Now,
	}

	ctx := context.Background()
	if _, err := c.Get(ctx); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected refresh to force a fetch, got %d calls", calls)
	}
}

func TestQuoteSource(t *testing.T) {
	a := NewQuoteSource(42).Quote("RELIANCE")
	b := NewQuoteSource(42).Quote("RELIANCE")

	if a.Status != models.QuoteStatusDemo {
		t.Errorf("expected demo status, got %q", a.Status)
	}
	if a.Price != b.Price || a.Change != b.Change {
		t.Error("same seed should produce identical quotes")
	}
	if a.Price < 100 || a.Price > 5000 {
		t.Errorf("price out of range: %f", a.Price)
	}
	if a.Symbol != "RELIANCE" {
		t.Errorf("unexpected symbol %q", a.Symbol)
	}
}

func TestQuoteSourceConcurrent(t *testing.T) {
	q := NewQuoteSource(42)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				quote := q.Quote("RELIANCE")
				if quote.Price < 100 || quote.Price > 5000 {
					t.Errorf("price out of range: %f", quote.Price)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestQuoteSourceNormalizesTicker(t *testing.T) {
	q := NewQuoteSource(1).Quote("$ril")
	if q.Symbol != "RELIANCE" {
		t.Errorf("expected alias normalization to RELIANCE, got %q", q.Symbol)
	}
}
