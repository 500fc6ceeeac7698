package report

import (
	"fmt"
	"testing"

	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	table, err := refdata.Load()
	if err != nil {
		t.Fatalf("load reference table: %v", err)
	}
	return NewBuilder(table, nil)
}

func article(title string, sentiment models.Sentiment, mentions ...string) models.Article {
	return models.Article{
		Title:         title,
		URL:           "https://example.com/" + title,
		Sentiment:     sentiment,
		StockMentions: mentions,
	}
}

func TestBuildEmpty(t *testing.T) {
	b := testBuilder(t)
	if got := b.Build(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d sectors", len(got))
	}
	if got := b.Build(models.SectorArticles{}); len(got) != 0 {
		t.Errorf("expected empty result, got %d sectors", len(got))
	}
}

func TestBuildGainerRequiresPositiveMajority(t *testing.T) {
	b := testBuilder(t)

	input := models.SectorArticles{
		"Oil & Gas": {
			article("RELIANCE surges", models.SentimentPositive, "RELIANCE"),
			article("RELIANCE beats estimates", models.SentimentPositive, "RELIANCE"),
			article("RELIANCE slips", models.SentimentNegative, "RELIANCE"),
		},
	}

	result := b.Build(input)
	oil, ok := result["Oil & Gas"]
	if !ok {
		t.Fatal("expected Oil & Gas sector in result")
	}
	if len(oil.Gainers) != 1 || oil.Gainers[0].Symbol != "RELIANCE" {
		t.Fatalf("expected RELIANCE as gainer, got %+v", oil.Gainers)
	}
	if oil.Gainers[0].PositiveCount != 2 {
		t.Errorf("expected positive count 2, got %d", oil.Gainers[0].PositiveCount)
	}
	if len(oil.Losers) != 0 {
		t.Errorf("expected no losers, got %+v", oil.Losers)
	}
}

func TestBuildTieIsNeitherGainerNorLoser(t *testing.T) {
	b := testBuilder(t)

	input := models.SectorArticles{
		"IT": {
			article("INFY up", models.SentimentPositive, "INFY"),
			article("INFY down", models.SentimentNegative, "INFY"),
		},
	}

	result := b.Build(input)
	it := result["IT"]
	if len(it.Gainers) != 0 || len(it.Losers) != 0 {
		t.Errorf("tied stock must not rank: gainers=%+v losers=%+v", it.Gainers, it.Losers)
	}
}

func TestBuildUsesReferenceSector(t *testing.T) {
	b := testBuilder(t)

	// Article classified under Banking, but INFY belongs to IT in the
	// reference table. The stock must rank under IT.
	input := models.SectorArticles{
		"Banking": {
			article("INFY wins banking deal", models.SentimentPositive, "INFY"),
		},
	}

	result := b.Build(input)
	if it, ok := result["IT"]; !ok || len(it.Gainers) != 1 || it.Gainers[0].Symbol != "INFY" {
		t.Fatalf("expected INFY gainer under IT, got %+v", result)
	}
	if banking, ok := result["Banking"]; ok && len(banking.Gainers) > 0 {
		t.Errorf("INFY must not rank under Banking: %+v", banking.Gainers)
	}
}

func TestBuildUnknownSymbolIgnored(t *testing.T) {
	b := testBuilder(t)

	input := models.SectorArticles{
		"Banking": {
			article("NOSUCHSYM rallies", models.SentimentPositive, "NOSUCHSYM"),
		},
	}

	if result := b.Build(input); len(result) != 0 {
		t.Errorf("unknown symbol should yield nothing, got %+v", result)
	}
}

func TestBuildCapsArticlesAndRanking(t *testing.T) {
	b := testBuilder(t)

	var articles []models.Article
	for i := 0; i < 5; i++ {
		articles = append(articles, article(fmt.Sprintf("RELIANCE story %d", i), models.SentimentPositive, "RELIANCE"))
	}
	input := models.SectorArticles{"Oil & Gas": articles}

	result := b.Build(input)
	gainers := result["Oil & Gas"].Gainers
	if len(gainers) != 1 {
		t.Fatalf("expected 1 gainer, got %d", len(gainers))
	}
	if len(gainers[0].Articles) != maxArticlesPerStock {
		t.Errorf("expected %d articles kept, got %d", maxArticlesPerStock, len(gainers[0].Articles))
	}
	if gainers[0].PositiveCount != 5 {
		t.Errorf("expected count 5, got %d", gainers[0].PositiveCount)
	}
}

func TestBuildRankingOrder(t *testing.T) {
	b := testBuilder(t)

	input := models.SectorArticles{
		"Banking": {
			article("SBIN gains 1", models.SentimentPositive, "SBIN"),
			article("HDFCBANK gains 1", models.SentimentPositive, "HDFCBANK"),
			article("HDFCBANK gains 2", models.SentimentPositive, "HDFCBANK"),
		},
	}

	gainers := b.Build(input)["Banking"].Gainers
	if len(gainers) != 2 {
		t.Fatalf("expected 2 gainers, got %d", len(gainers))
	}
	if gainers[0].Symbol != "HDFCBANK" || gainers[1].Symbol != "SBIN" {
		t.Errorf("expected HDFCBANK before SBIN, got %v then %v", gainers[0].Symbol, gainers[1].Symbol)
	}
}

func TestBuildRepresentativeArticles(t *testing.T) {
	b := testBuilder(t)

	input := models.SectorArticles{
		"Pharmaceuticals": {
			article("SUNPHARMA approval", models.SentimentPositive, "SUNPHARMA"),
			article("CIPLA recall", models.SentimentNegative, "CIPLA"),
			article("DRREDDY flat quarter", models.SentimentNeutral, "DRREDDY"),
		},
	}

	pharma := b.Build(input)["Pharmaceuticals"]
	if len(pharma.Positive) != 1 || len(pharma.Negative) != 1 {
		t.Fatalf("expected 1 positive and 1 negative article, got %d/%d", len(pharma.Positive), len(pharma.Negative))
	}
	// Neutral articles never appear in either representative list.
	for _, a := range append(pharma.Positive, pharma.Negative...) {
		if a.Sentiment == models.SentimentNeutral {
			t.Errorf("neutral article leaked into representative list: %q", a.Title)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	b := testBuilder(t)

	input := models.SectorArticles{
		"Banking": {
			article("SBIN up", models.SentimentPositive, "SBIN"),
			article("ICICIBANK up", models.SentimentPositive, "ICICIBANK"),
			article("AXISBANK up", models.SentimentPositive, "AXISBANK"),
		},
		"IT": {
			article("INFY up", models.SentimentPositive, "INFY"),
		},
	}

	first := b.Build(input)
	for i := 0; i < 10; i++ {
		again := b.Build(input)
		banking := again["Banking"].Gainers
		for j, g := range first["Banking"].Gainers {
			if banking[j].Symbol != g.Symbol {
				t.Fatalf("run %d: order changed at %d: %s vs %s", i, j, banking[j].Symbol, g.Symbol)
			}
		}
	}
}

func TestFilterWatchlist(t *testing.T) {
	full := map[string]models.SectorReport{
		"Banking": {
			Gainers:  []models.RankedStock{{Symbol: "HDFCBANK", PositiveCount: 2}, {Symbol: "SBIN", PositiveCount: 1}},
			Positive: []models.Article{{Title: "ignored"}},
		},
		"IT": {
			Losers: []models.RankedStock{{Symbol: "WIPRO", NegativeCount: 1}},
		},
	}

	filtered := FilterWatchlist(full, []string{"SBIN"})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 sector, got %d", len(filtered))
	}
	banking, ok := filtered["Banking"]
	if !ok || len(banking.Gainers) != 1 || banking.Gainers[0].Symbol != "SBIN" {
		t.Fatalf("expected only SBIN, got %+v", filtered)
	}
	if len(banking.Positive) != 0 {
		t.Error("representative articles must be dropped from the watchlist view")
	}
}

func TestFilterWatchlistEmpty(t *testing.T) {
	if got := FilterWatchlist(map[string]models.SectorReport{}, []string{"SBIN"}); len(got) != 0 {
		t.Errorf("expected empty filter result, got %+v", got)
	}
	if got := FilterWatchlist(map[string]models.SectorReport{"IT": {}}, nil); len(got) != 0 {
		t.Errorf("expected empty result with no watchlist, got %+v", got)
	}
}
