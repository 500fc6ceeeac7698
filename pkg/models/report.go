package models

// RankedStock is one entry in a sector's gainer or loser list. A gainer
// carries its positive mention count, a loser its negative count; at most
// three contributing articles are kept per symbol.
type RankedStock struct {
	Symbol        string    `json:"symbol"`
	PositiveCount int       `json:"positive_count,omitempty"`
	NegativeCount int       `json:"negative_count,omitempty"`
	Articles      []Article `json:"articles"`
}

// SectorReport is the per-sector output of the gainers/losers builder.
// Gainers and losers are capped at ten entries each, representative
// article lists at ten as well.
type SectorReport struct {
	Gainers  []RankedStock `json:"gainers"`
	Losers   []RankedStock `json:"losers"`
	Positive []Article     `json:"positive"`
	Negative []Article     `json:"negative"`
}

// IsEmpty reports whether the sector has nothing worth showing.
func (r SectorReport) IsEmpty() bool {
	return len(r.Gainers) == 0 && len(r.Losers) == 0 &&
		len(r.Positive) == 0 && len(r.Negative) == 0
}
