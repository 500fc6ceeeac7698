// Package refdata loads the reference company table: the authoritative
// mapping from NSE symbol to company name, sector, and industry.
//
// The table ships embedded in the binary; an external CSV can override it.
// When neither can be read, a small built-in set keeps the service usable.
package refdata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/seenimoa/sectorwatch/pkg/models"
)

//go:embed company.csv
var embeddedCSV []byte

// Alias maps a lowercase company name to its symbol, in table order.
type Alias struct {
	Name   string
	Symbol string
}

// Table is the immutable reference company table, loaded once at startup.
type Table struct {
	records        []models.CompanyRecord
	symbolSet      map[string]struct{}
	symbolToSector map[string]string
	aliases        []Alias
	sortedSymbols  []string
	sectors        []string
}

// Load parses the embedded company table.
func Load() (*Table, error) {
	return parse(bytes.NewReader(embeddedCSV))
}

// LoadFile parses an external company CSV, overriding the embedded table.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open company table %s: %w", path, err)
	}
	defer f.Close()
	return parse(f)
}

// Fallback returns the small built-in company set used when no table
// can be read.
func Fallback() *Table {
	t, _ := build([]models.CompanyRecord{
		{Name: "Reliance Industries", Symbol: "RELIANCE", Sector: "Oil & Gas"},
		{Name: "TCS", Symbol: "TCS", Sector: "IT"},
		{Name: "HDFC Bank", Symbol: "HDFCBANK", Sector: "Banking"},
		{Name: "Bharat Electronics", Symbol: "BEL", Sector: "Defense"},
		{Name: "Infosys", Symbol: "INFY", Sector: "IT"},
		{Name: "Wipro", Symbol: "WIPRO", Sector: "IT"},
		{Name: "ICICI Bank", Symbol: "ICICIBANK", Sector: "Banking"},
		{Name: "State Bank of India", Symbol: "SBIN", Sector: "Banking"},
	})
	return t
}

// MustLoad loads the embedded table, falling back to the built-in set on
// error. This is the startup path: a broken table degrades, never aborts.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		return Fallback()
	}
	return t
}

func parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read company table header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"COMPANY_NAME", "SYMBOL", "SECTOR"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("company table missing column %s", required)
		}
	}

	var records []models.CompanyRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read company table row: %w", err)
		}
		rec := models.CompanyRecord{
			Name:   strings.TrimSpace(row[col["COMPANY_NAME"]]),
			Symbol: strings.ToUpper(strings.TrimSpace(row[col["SYMBOL"]])),
			Sector: strings.TrimSpace(row[col["SECTOR"]]),
		}
		if i, ok := col["INDUSTRY"]; ok && i < len(row) {
			rec.Industry = strings.TrimSpace(row[i])
		}
		// Rows without a name or sector carry no signal.
		if rec.Name == "" || rec.Sector == "" || rec.Symbol == "" {
			continue
		}
		records = append(records, rec)
	}

	return build(records)
}

func build(records []models.CompanyRecord) (*Table, error) {
	t := &Table{
		records:        records,
		symbolSet:      make(map[string]struct{}, len(records)),
		symbolToSector: make(map[string]string, len(records)),
	}

	seenSector := make(map[string]struct{})
	for _, rec := range records {
		if _, dup := t.symbolSet[rec.Symbol]; !dup {
			t.symbolSet[rec.Symbol] = struct{}{}
			t.symbolToSector[rec.Symbol] = rec.Sector
			t.sortedSymbols = append(t.sortedSymbols, rec.Symbol)
		}
		t.aliases = append(t.aliases, Alias{Name: strings.ToLower(rec.Name), Symbol: rec.Symbol})
		if _, dup := seenSector[rec.Sector]; !dup {
			seenSector[rec.Sector] = struct{}{}
			t.sectors = append(t.sectors, rec.Sector)
		}
	}
	sort.Strings(t.sortedSymbols)

	return t, nil
}

// Len returns the number of company records.
func (t *Table) Len() int { return len(t.records) }

// Records returns the company records in table order.
func (t *Table) Records() []models.CompanyRecord { return t.records }

// HasSymbol reports whether the symbol is in the known universe.
func (t *Table) HasSymbol(symbol string) bool {
	_, ok := t.symbolSet[symbol]
	return ok
}

// SectorOf returns the authoritative sector for a symbol, or "" if unknown.
func (t *Table) SectorOf(symbol string) string {
	return t.symbolToSector[symbol]
}

// Symbols returns all known symbols in sorted order. Sorted iteration keeps
// headline extraction deterministic.
func (t *Table) Symbols() []string { return t.sortedSymbols }

// Aliases returns lowercase company-name aliases in table order.
func (t *Table) Aliases() []Alias { return t.aliases }

// Sectors returns the distinct sector names in table order.
func (t *Table) Sectors() []string { return t.sectors }

// maxSearchResults caps Search output.
const maxSearchResults = 15

// Search finds companies matching the query: exact symbol first, then
// symbol prefix, then name substring. Case-insensitive, deduplicated.
func (t *Table) Search(query string) []models.CompanyRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var results []models.CompanyRecord

	add := func(rec models.CompanyRecord) bool {
		if _, dup := seen[rec.Symbol]; dup {
			return len(results) < maxSearchResults
		}
		seen[rec.Symbol] = struct{}{}
		results = append(results, rec)
		return len(results) < maxSearchResults
	}

	for _, rec := range t.records {
		if strings.ToLower(rec.Symbol) == q {
			if !add(rec) {
				return results
			}
		}
	}
	for _, rec := range t.records {
		if strings.HasPrefix(strings.ToLower(rec.Symbol), q) {
			if !add(rec) {
				return results
			}
		}
	}
	for _, rec := range t.records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			if !add(rec) {
				return results
			}
		}
	}

	return results
}
