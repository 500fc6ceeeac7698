package datasource

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/seenimoa/sectorwatch/pkg/models"
	"github.com/seenimoa/sectorwatch/pkg/utils"
)

// QuoteSource produces placeholder quotes for watchlist display. The
// dashboard has no licensed price feed, so values are synthetic and
// tagged as such via the Status field. Quote is called from concurrent
// HTTP handlers, and *rand.Rand is not safe for concurrent use, so the
// generator is guarded by a mutex.
type QuoteSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuoteSource seeds the generator. A fixed seed gives reproducible
// quotes in tests.
func NewQuoteSource(seed uint64) *QuoteSource {
	return &QuoteSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Quote returns a synthetic quote for the symbol.
func (q *QuoteSource) Quote(symbol string) models.Quote {
	symbol = utils.NormalizeTicker(symbol)

	q.mu.Lock()
	price := 100 + q.rng.Float64()*4900
	change := -50 + q.rng.Float64()*100
	q.mu.Unlock()
	percent := change / price * 100

	return models.Quote{
		Symbol:        symbol,
		Price:         round2(price),
		Change:        round2(change),
		PercentChange: round2(percent),
		Display:       utils.FormatINR(round2(price)),
		Status:        models.QuoteStatusDemo,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
