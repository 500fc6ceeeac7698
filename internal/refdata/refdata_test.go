package refdata

import (
	"sort"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() < 200 {
		t.Errorf("expected at least 200 companies, got %d", table.Len())
	}
	if !table.HasSymbol("RELIANCE") {
		t.Error("RELIANCE missing from embedded table")
	}
	if got := table.SectorOf("RELIANCE"); got != "Oil & Gas" {
		t.Errorf("SectorOf(RELIANCE) = %q, want Oil & Gas", got)
	}
	if got := table.SectorOf("TCS"); got != "IT" {
		t.Errorf("SectorOf(TCS) = %q, want IT", got)
	}
	if got := table.SectorOf("NOSUCHSYM"); got != "" {
		t.Errorf("SectorOf unknown = %q, want empty", got)
	}
}

func TestSymbolsSorted(t *testing.T) {
	table := MustLoad()
	syms := table.Symbols()
	if !sort.StringsAreSorted(syms) {
		t.Error("Symbols() is not sorted")
	}
	if len(syms) != table.Len() {
		// Duplicated symbols are deduplicated; the embedded table has none.
		t.Errorf("symbol count %d != record count %d", len(syms), table.Len())
	}
}

func TestFallback(t *testing.T) {
	table := Fallback()
	if table.Len() != 8 {
		t.Errorf("fallback should have 8 records, got %d", table.Len())
	}
	if got := table.SectorOf("BEL"); got != "Defense" {
		t.Errorf("SectorOf(BEL) = %q, want Defense", got)
	}
	if !table.HasSymbol("SBIN") {
		t.Error("SBIN missing from fallback")
	}
}

func TestSearch(t *testing.T) {
	table := MustLoad()

	results := table.Search("RELIANCE")
	if len(results) == 0 || results[0].Symbol != "RELIANCE" {
		t.Fatalf("exact symbol search failed: %+v", results)
	}

	results = table.Search("tata")
	if len(results) == 0 {
		t.Fatal("expected name-substring matches for tata")
	}
	if len(results) > 15 {
		t.Errorf("search results should cap at 15, got %d", len(results))
	}
	seen := make(map[string]bool)
	for _, r := range results {
		if seen[r.Symbol] {
			t.Errorf("duplicate symbol %s in results", r.Symbol)
		}
		seen[r.Symbol] = true
	}

	if got := table.Search("  "); got != nil {
		t.Errorf("blank query should return nil, got %v", got)
	}
}
