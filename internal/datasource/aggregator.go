package datasource

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

// Aggregator fans out over all configured feeds concurrently and merges
// the per-feed sector maps into one. A failed or slow feed never sinks
// the refresh: its articles are simply absent from that cycle.
type Aggregator struct {
	fetcher *Fetcher
	feeds   []Feed
	log     *logbuf.Buffer

	feedTimeout time.Duration
}

// NewAggregator builds an aggregator over the given feeds. Pass
// DefaultFeeds and a zero Options for the stock configuration.
func NewAggregator(extractor *extract.Extractor, feeds []Feed, log *logbuf.Buffer, opts Options) *Aggregator {
	opts = opts.withDefaults()
	return &Aggregator{
		fetcher:     NewFetcher(extractor, log, opts),
		feeds:       feeds,
		log:         log,
		feedTimeout: opts.FeedTimeout,
	}
}

// Feeds returns the configured feed list.
func (a *Aggregator) Feeds() []Feed { return a.feeds }

// FetchAll polls every feed concurrently, bounding each fetch by the
// per-feed timeout, and merges the results. Only a configuration error
// is fatal; per-feed failures are logged and skipped.
func (a *Aggregator) FetchAll(ctx context.Context) (models.SectorArticles, error) {
	if len(a.feeds) == 0 {
		return nil, ErrNoFeeds
	}

	a.logf("fetching news from %d sources", len(a.feeds))

	merged := models.SectorArticles{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, feed := range a.feeds {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, a.feedTimeout)
			defer cancel()

			articles, err := a.fetcher.FetchFeed(fctx, feed)
			if err != nil {
				return nil // logged by the fetcher
			}

			mu.Lock()
			merged.Merge(articles)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return merged, err
	}

	a.logf("total Indian market articles: %d", merged.Total())
	return merged, nil
}

func (a *Aggregator) logf(format string, args ...any) {
	if a.log != nil {
		a.log.Addf(format, args...)
	}
}
