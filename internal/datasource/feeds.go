package datasource

import "strings"

// Feed is a single configured RSS source.
type Feed struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DisplayName converts the internal feed key into a human-readable
// source label, e.g. "economic_times_market" -> "Economic Times Market".
func (f Feed) DisplayName() string {
	parts := strings.Split(f.Name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// DefaultFeeds lists the Indian financial news RSS sources polled on
// every refresh. Order is stable so runs are reproducible.
var DefaultFeeds = []Feed{
	// Economic Times
	{Name: "economic_times_market", URL: "https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms"},
	{Name: "economic_times_stocks", URL: "https://economictimes.indiatimes.com/markets/stocks/rssfeeds/2146842.cms"},
	{Name: "economic_times_ipos", URL: "https://economictimes.indiatimes.com/markets/ipo/rssfeeds/67812142.cms"},
	{Name: "economic_times_commodities", URL: "https://economictimes.indiatimes.com/markets/commodities/rssfeeds/1808152121.cms"},

	// Moneycontrol
	{Name: "moneycontrol", URL: "https://www.moneycontrol.com/rss/business.xml"},
	{Name: "moneycontrol_news", URL: "https://www.moneycontrol.com/rss/latestnews.xml"},
	{Name: "moneycontrol_markets", URL: "https://www.moneycontrol.com/rss/marketreports.xml"},
	{Name: "moneycontrol_stocks", URL: "https://www.moneycontrol.com/rss/stockmarket.xml"},

	// Business Standard
	{Name: "business_standard", URL: "https://www.business-standard.com/rss/markets-106.rss"},
	{Name: "business_standard_companies", URL: "https://www.business-standard.com/rss/companies-101.rss"},
	{Name: "business_standard_economy", URL: "https://www.business-standard.com/rss/economy-policy-102.rss"},

	// Financial Express
	{Name: "financial_express", URL: "https://www.financialexpress.com/market/feed/"},
	{Name: "financial_express_industry", URL: "https://www.financialexpress.com/industry/feed/"},

	// Livemint
	{Name: "livemint", URL: "https://www.livemint.com/rss/markets"},
	{Name: "livemint_companies", URL: "https://www.livemint.com/rss/companies"},
	{Name: "livemint_money", URL: "https://www.livemint.com/rss/money"},

	// NDTV Profit
	{Name: "ndtv_business", URL: "https://feeds.feedburner.com/ndtvprofit-latest"},

	// Zee Business
	{Name: "zeebiz", URL: "https://www.zeebiz.com/rss/markets.xml"},
	{Name: "zeebiz_personal_finance", URL: "https://www.zeebiz.com/rss/personal-finance.xml"},
	{Name: "zeebiz_stocks", URL: "https://www.zeebiz.com/rss/market-news.xml"},

	// CNBC TV18
	{Name: "cnbc_market", URL: "https://www.cnbctv18.com/rss/marketnews.xml"},
	{Name: "cnbc_business", URL: "https://www.cnbctv18.com/rss/latestnews.xml"},

	// Google News
	{Name: "google_india_business", URL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRFp0Y0RvU0FtVnVHZ0pKVGtnQVAB?hl=en-IN&gl=IN&ceid=IN:en"},
	{Name: "google_india_stocks", URL: "https://news.google.com/rss/search?q=indian%20stocks&hl=en-IN&gl=IN&ceid=IN:en"},
	{Name: "google_sensex", URL: "https://news.google.com/rss/search?q=sensex&hl=en-IN&gl=IN&ceid=IN:en"},
	{Name: "google_nifty", URL: "https://news.google.com/rss/search?q=nifty&hl=en-IN&gl=IN&ceid=IN:en"},

	// Business Today
	{Name: "business_today_markets", URL: "https://www.businesstoday.in/rss/market"},
	{Name: "business_today_companies", URL: "https://www.businesstoday.in/rss/company"},

	// BQ Prime
	{Name: "bq_prime_markets", URL: "https://www.bqprime.com/markets.rss"},
	{Name: "bq_prime_business", URL: "https://www.bqprime.com/business.rss"},

	// Hindu Business Line
	{Name: "hindu_business_line", URL: "https://www.thehindubusinessline.com/markets/stock-markets/feeder/default.rss"},

	// India Today
	{Name: "india_today_business", URL: "https://www.indiatoday.in/rss/1206514"},

	// Times of India Business
	{Name: "toi_business", URL: "https://timesofindia.indiatimes.com/rssfeeds/1898055.cms"},

	// Reuters
	{Name: "reuters_india", URL: "https://www.reuters.com/rssFeed/INbusinessNews"},

	// Investing.com India
	{Name: "investing_india", URL: "https://www.investing.com/rss/news_301.rss"},
}
