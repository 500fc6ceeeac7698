package datasource

import (
	"context"
	"sync"
	"time"

	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

// DefaultCacheTTL is how long a fetched snapshot stays fresh.
const DefaultCacheTTL = 600 * time.Second

// NewsCache memoizes the merged sector map. The mutex is held across
// the refresh so concurrent callers ride on a single fetch instead of
// hammering every feed at once.
type NewsCache struct {
	mu        sync.Mutex
	data      models.SectorArticles
	fetchedAt time.Time

	fetch func(context.Context) (models.SectorArticles, error)
	ttl   time.Duration
	now   func() time.Time
	log   *logbuf.Buffer
}

// NewNewsCache fronts the aggregator with a TTL cache.
func NewNewsCache(agg *Aggregator, ttl time.Duration, log *logbuf.Buffer) *NewsCache {
	return NewNewsCacheFunc(agg.FetchAll, ttl, log)
}

// NewNewsCacheFunc caches an arbitrary fetch function. Callers that do
// not poll real feeds (tests, replay tooling) use this directly.
func NewNewsCacheFunc(fetch func(context.Context) (models.SectorArticles, error), ttl time.Duration, log *logbuf.Buffer) *NewsCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &NewsCache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
		log:   log,
	}
}

// Get returns the cached snapshot when fresh, otherwise refreshes.
// A failed refresh with stale data on hand serves the stale snapshot.
func (c *NewsCache) Get(ctx context.Context) (models.SectorArticles, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		c.logf("using cached news data")
		return c.data, nil
	}

	c.logf("fetching fresh news data")
	data, err := c.fetch(ctx)
	if err != nil {
		if c.data != nil {
			c.logf("refresh failed, serving stale snapshot: %v", err)
			return c.data, nil
		}
		return nil, err
	}

	c.data = data
	c.fetchedAt = c.now()
	return c.data, nil
}

// Refresh forces a fetch regardless of freshness.
func (c *NewsCache) Refresh(ctx context.Context) (models.SectorArticles, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.data = data
	c.fetchedAt = c.now()
	return c.data, nil
}

// FetchedAt reports when the current snapshot was taken.
func (c *NewsCache) FetchedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}

func (c *NewsCache) logf(format string, args ...any) {
	if c.log != nil {
		c.log.Addf(format, args...)
	}
}
