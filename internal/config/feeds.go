package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/seenimoa/sectorwatch/internal/datasource"
)

// FetchOptions maps the configured knobs onto the fetch pipeline.
// Unset values fall back to the datasource package defaults.
func (c *NewsConfig) FetchOptions() datasource.Options {
	return datasource.Options{
		MaxPerFeed:  c.MaxPerFeed,
		Window:      time.Duration(c.FreshnessHours) * time.Hour,
		FeedTimeout: time.Duration(c.FeedTimeoutSec) * time.Second,
	}
}

// Feeds resolves the effective feed list: the built-in defaults minus
// any disabled names, plus extra feeds given as "name=url" pairs.
func (c *NewsConfig) Feeds() ([]datasource.Feed, error) {
	disabled := make(map[string]bool, len(c.DisableFeeds))
	for _, name := range c.DisableFeeds {
		disabled[strings.TrimSpace(name)] = true
	}

	var feeds []datasource.Feed
	for _, f := range datasource.DefaultFeeds {
		if !disabled[f.Name] {
			feeds = append(feeds, f)
		}
	}

	for _, pair := range c.ExtraFeeds {
		name, url, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("invalid extra feed %q, want name=url", pair)
		}
		feeds = append(feeds, datasource.Feed{Name: name, URL: url})
	}

	return feeds, nil
}
