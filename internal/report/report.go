// Package report turns the merged per-sector article map into the
// gainers/losers view shown on the dashboard. Stocks are placed in the
// sector the reference company table assigns them, not the sector their
// article was classified into: a headline about an IT company inside a
// broad market story still ranks the stock under IT.
package report

import (
	"sort"

	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

const (
	maxRankedPerSector       = 10
	maxArticlesPerStock      = 3
	maxRepresentativePerSide = 10
)

// Builder produces sector reports from tagged articles.
type Builder struct {
	table *refdata.Table
	log   *logbuf.Buffer
}

func NewBuilder(table *refdata.Table, log *logbuf.Buffer) *Builder {
	return &Builder{table: table, log: log}
}

type mentionStats struct {
	positive int
	negative int
	articles []models.Article
	sector   string
}

// Build computes gainers and losers per reference-table sector.
// Symbols missing from the reference table are ignored, so each symbol
// appears in exactly one sector. Sectors with nothing to show are
// omitted from the result.
func (b *Builder) Build(sectorArticles models.SectorArticles) map[string]models.SectorReport {
	if len(sectorArticles) == 0 {
		return map[string]models.SectorReport{}
	}

	stats := b.collectMentions(sectorArticles)

	result := make(map[string]models.SectorReport)
	for _, sector := range b.table.Sectors() {
		report := models.SectorReport{
			Gainers:  b.rankSide(stats, sector, true),
			Losers:   b.rankSide(stats, sector, false),
			Positive: b.representative(sectorArticles, sector, models.SentimentPositive),
			Negative: b.representative(sectorArticles, sector, models.SentimentNegative),
		}
		if !report.IsEmpty() {
			result[sector] = report
		}
	}

	if b.log != nil {
		b.log.Addf("built gainers/losers for %d sectors", len(result))
	}
	return result
}

// sortedSectors fixes the iteration order over the article map so the
// capped article selections come out the same on every run.
func sortedSectors(sectorArticles models.SectorArticles) []string {
	keys := make([]string, 0, len(sectorArticles))
	for sector := range sectorArticles {
		keys = append(keys, sector)
	}
	sort.Strings(keys)
	return keys
}

// collectMentions tallies sentiment per mentioned symbol across every
// article, resolving each symbol to its reference-table sector.
func (b *Builder) collectMentions(sectorArticles models.SectorArticles) map[string]*mentionStats {
	stats := make(map[string]*mentionStats)

	for _, sector := range sortedSectors(sectorArticles) {
		articles := sectorArticles[sector]
		for _, art := range articles {
			for _, symbol := range art.StockMentions {
				sector := b.table.SectorOf(symbol)
				if sector == "" {
					continue
				}

				s, ok := stats[symbol]
				if !ok {
					s = &mentionStats{sector: sector}
					stats[symbol] = s
				}
				s.articles = append(s.articles, art)

				switch art.Sentiment {
				case models.SentimentPositive:
					s.positive++
				case models.SentimentNegative:
					s.negative++
				}
			}
		}
	}

	return stats
}

// rankSide selects gainers (positive majority) or losers (negative
// majority) for one sector, sorted by count descending then symbol for
// a stable order, capped at ten entries with three articles each.
func (b *Builder) rankSide(stats map[string]*mentionStats, sector string, gainers bool) []models.RankedStock {
	var ranked []models.RankedStock

	for symbol, s := range stats {
		if s.sector != sector {
			continue
		}

		articles := s.articles
		if len(articles) > maxArticlesPerStock {
			articles = articles[:maxArticlesPerStock]
		}

		if gainers && s.positive > s.negative && s.positive >= 1 {
			ranked = append(ranked, models.RankedStock{
				Symbol:        symbol,
				PositiveCount: s.positive,
				Articles:      articles,
			})
		} else if !gainers && s.negative > s.positive && s.negative >= 1 {
			ranked = append(ranked, models.RankedStock{
				Symbol:        symbol,
				NegativeCount: s.negative,
				Articles:      articles,
			})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := ranked[i].PositiveCount, ranked[j].PositiveCount
		if !gainers {
			ci, cj = ranked[i].NegativeCount, ranked[j].NegativeCount
		}
		if ci != cj {
			return ci > cj
		}
		return ranked[i].Symbol < ranked[j].Symbol
	})

	if len(ranked) > maxRankedPerSector {
		ranked = ranked[:maxRankedPerSector]
	}
	return ranked
}

// representative picks up to ten articles of the given sentiment that
// mention at least one stock belonging to the sector.
func (b *Builder) representative(sectorArticles models.SectorArticles, sector string, sentiment models.Sentiment) []models.Article {
	var picked []models.Article

	for _, key := range sortedSectors(sectorArticles) {
		articles := sectorArticles[key]
		for _, art := range articles {
			if art.Sentiment != sentiment {
				continue
			}
			for _, symbol := range art.StockMentions {
				if b.table.SectorOf(symbol) == sector {
					picked = append(picked, art)
					break
				}
			}
		}
	}

	if len(picked) > maxRepresentativePerSide {
		picked = picked[:maxRepresentativePerSide]
	}
	return picked
}

// FilterWatchlist narrows a full report to the given symbols, keeping
// only sectors where a watched stock ranks as gainer or loser. The
// representative article lists are dropped; the watchlist view shows
// ranked stocks only.
func FilterWatchlist(full map[string]models.SectorReport, symbols []string) map[string]models.SectorReport {
	watched := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		watched[s] = true
	}

	filtered := make(map[string]models.SectorReport)
	for sector, report := range full {
		var gainers, losers []models.RankedStock
		for _, g := range report.Gainers {
			if watched[g.Symbol] {
				gainers = append(gainers, g)
			}
		}
		for _, l := range report.Losers {
			if watched[l.Symbol] {
				losers = append(losers, l)
			}
		}
		if len(gainers) > 0 || len(losers) > 0 {
			filtered[sector] = models.SectorReport{Gainers: gainers, Losers: losers}
		}
	}
	return filtered
}
