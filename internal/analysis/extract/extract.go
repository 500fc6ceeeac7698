// Package extract pulls NSE ticker symbols out of news headlines.
//
// Extraction is headline-only: body text is ignored to keep false
// positives down. Short symbols (three characters or fewer) collide with
// ordinary English words, so they must pass a word-boundary match, a
// stock-context check, and a spacing check before they count.
package extract

import (
	"regexp"
	"strings"

	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/internal/taxonomy"
)

// MaxSymbols caps how many symbols one headline can yield.
const MaxSymbols = 3

// shortSymbolLen is the length at or below which the strict rules apply.
const shortSymbolLen = 3

// minAliasLen is the shortest company-name alias worth substring matching.
const minAliasLen = 5

// stockContext terms must appear somewhere in a headline before a short
// symbol match is trusted.
var stockContext = []string{
	"share", "stock", "equity", "bse", "nse", "sensex", "nifty",
	"market", "trading", "investors", "price", "gains", "falls",
	"q1", "q2", "q3", "q4", "earnings", "profit", "loss", "revenue",
	"demerger", "merger", "acquisition", "ipo", "fpo", "dividend",
	"rally", "surge", "plunge", "tumbles", "jumps", "soars",
}

// denylist holds short English words that collide with real tickers and
// are never reported.
var denylist = map[string]struct{}{
	"IT": {}, "AM": {}, "PM": {}, "IN": {}, "ON": {}, "AT": {},
	"TO": {}, "OR": {}, "AN": {}, "AS": {}, "BE": {}, "IS": {},
}

type symbolRule struct {
	symbol  string
	short   bool
	word    *regexp.Regexp // whole-word match against the uppercased title
	spacing *regexp.Regexp // stricter spacing check for short symbols
}

// Extractor matches known symbols and company aliases against headlines.
// Construct once at startup; Extract is safe for concurrent use.
type Extractor struct {
	table *refdata.Table
	rules []symbolRule
}

// New builds an extractor over the reference table's symbol universe.
// Symbols are matched in sorted order so results are deterministic.
func New(table *refdata.Table) *Extractor {
	e := &Extractor{table: table}
	for _, sym := range table.Symbols() {
		quoted := regexp.QuoteMeta(sym)
		rule := symbolRule{
			symbol: sym,
			short:  len(sym) <= shortSymbolLen,
			word:   regexp.MustCompile(`\b` + quoted + `\b`),
		}
		if rule.short {
			rule.spacing = regexp.MustCompile(`(?:^|\s)` + quoted + `(?:\s|$|'S|,|\.)`)
		}
		e.rules = append(e.rules, rule)
	}
	return e
}

// Extract returns up to MaxSymbols ticker symbols mentioned in the
// headline, in discovery order. Empty input yields an empty result.
func (e *Extractor) Extract(title string) []string {
	if title == "" {
		return nil
	}

	upper := strings.ToUpper(title)
	lower := strings.ToLower(title)
	hasContext := containsAny(lower, stockContext)

	var found []string
	seen := make(map[string]struct{})
	add := func(sym string) {
		if _, dup := seen[sym]; dup {
			return
		}
		seen[sym] = struct{}{}
		found = append(found, sym)
	}

	// Pass 1: symbol mentions. Short symbols need context plus spacing.
	for _, rule := range e.rules {
		if !rule.word.MatchString(upper) {
			continue
		}
		if rule.short && !(hasContext && rule.spacing.MatchString(upper)) {
			continue
		}
		add(rule.symbol)
	}

	// Pass 2: company-name aliases from the reference table.
	for _, alias := range e.table.Aliases() {
		if len(alias.Name) >= minAliasLen && strings.Contains(lower, alias.Name) {
			add(alias.Symbol)
		}
	}

	// Pass 3: sector taxonomy aliases, index-aligned with their symbols.
	for _, sector := range taxonomy.Sectors {
		for i, company := range sector.Companies {
			if len(company) < minAliasLen || i >= len(sector.Symbols) {
				continue
			}
			if !strings.Contains(lower, company) {
				continue
			}
			if sym := sector.Symbols[i]; e.table.HasSymbol(sym) {
				add(sym)
			}
		}
	}

	// Drop denylisted collisions, then cap.
	kept := found[:0]
	for _, sym := range found {
		if _, bad := denylist[sym]; !bad {
			kept = append(kept, sym)
		}
	}
	if len(kept) > MaxSymbols {
		kept = kept[:MaxSymbols]
	}
	return kept
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
