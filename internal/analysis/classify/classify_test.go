package classify

import "testing"

func TestSectorClassification(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantSector  string
		wantOK      bool
	}{
		{
			name:        "oil and gas via company alias",
			title:       "RELIANCE shares surge on strong Q1 earnings",
			description: "Reliance Industries reported strong quarterly profit growth",
			wantSector:  "Oil & Gas",
			wantOK:      true,
		},
		{
			name:        "banking via keywords",
			title:       "HDFC Bank Q2 results",
			description: "The bank reported improved asset quality and net interest margin",
			wantSector:  "Banking",
			wantOK:      true,
		},
		{
			name:        "pharma",
			title:       "Sun Pharma gets USFDA approval",
			description: "The pharmaceutical company received approval for a generic drug",
			wantSector:  "Pharmaceuticals",
			wantOK:      true,
		},
		{
			name:        "no signal",
			title:       "Weather update for the weekend",
			description: "Rain expected across the region",
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sector, ok := Sector(tt.title, tt.description)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (sector %q)", ok, tt.wantOK, sector)
			}
			if ok && sector != tt.wantSector {
				t.Errorf("sector = %q, want %q", sector, tt.wantSector)
			}
		})
	}
}

func TestSectorDeterministic(t *testing.T) {
	title := "Tata group stocks in focus"
	desc := "Tata Motors and Tata Steel lead gains"
	first, ok1 := Sector(title, desc)
	second, ok2 := Sector(title, desc)
	if first != second || ok1 != ok2 {
		t.Errorf("classification not deterministic: (%q,%v) vs (%q,%v)", first, ok1, second, ok2)
	}
}
