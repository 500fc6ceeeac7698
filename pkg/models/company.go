package models

// CompanyRecord is one row of the reference company table. The table is
// the authoritative symbol→sector mapping: it overrides whatever sector
// an article was classified into.
type CompanyRecord struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Sector   string `json:"sector"`
	Industry string `json:"industry,omitempty"`
}

// QuoteStatusDemo marks a quote as synthetic placeholder data.
const QuoteStatusDemo = "demo_data"

// Quote is a synthetic demo quote. There is no exchange connectivity;
// prices exist only to fill the watchlist view.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	Display       string  `json:"display,omitempty"`
	Status        string  `json:"status"`
}
