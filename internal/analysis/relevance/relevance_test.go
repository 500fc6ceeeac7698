package relevance

import (
	"testing"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/refdata"
)

func newFilter(t *testing.T) *Filter {
	t.Helper()
	table, err := refdata.Load()
	if err != nil {
		t.Fatalf("load reference table: %v", err)
	}
	return New(extract.New(table))
}

func TestRelevantIndiaKeyword(t *testing.T) {
	f := newFilter(t)

	tests := []struct {
		name  string
		title string
		desc  string
		want  bool
	}{
		{"sensex in title", "Sensex ends 300 points higher", "", true},
		{"nifty in description", "Markets close mixed", "Nifty 50 slipped below 24,000", true},
		{"regulator mention", "SEBI tightens disclosure norms", "", true},
		{"country mention", "Foreign funds return to India", "", true},
		{"case insensitive", "RUPEE weakens against dollar", "", true},
		{"foreign market story", "Dow Jones closes at session low", "Wall Street retreats", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Relevant(tt.title, tt.desc); got != tt.want {
				t.Errorf("Relevant(%q, %q) = %v, want %v", tt.title, tt.desc, got, tt.want)
			}
		})
	}
}

func TestRelevantBySymbolOnly(t *testing.T) {
	f := newFilter(t)

	// No India keyword, but a listed symbol in the title.
	if !f.Relevant("INFY announces buyback programme", "") {
		t.Error("expected article with listed symbol to be relevant")
	}
	// Symbol in description does not count; extraction runs on titles.
	if f.Relevant("Quarterly results preview", "INFY reports next week") {
		t.Error("expected symbol-only description to be irrelevant")
	}
}

func TestRelevantEmpty(t *testing.T) {
	f := newFilter(t)
	if f.Relevant("", "") {
		t.Error("expected empty article to be irrelevant")
	}
}
