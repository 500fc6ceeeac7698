// Package summarize produces an extractive summary plus tagging for a
// single article URL. It resolves tracking redirects, pulls paragraph
// text out of the page, keeps the first sentences as the summary, and
// reuses the headline extractor and sentiment scorer on the body.
package summarize

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/analysis/sentiment"
	"github.com/seenimoa/sectorwatch/internal/infra"
	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

const (
	resolveTimeout   = 10 * time.Second
	minContentWords  = 30
	summarySentences = 3
	maxMentions      = 6
	resultCacheTTL   = time.Hour
	defaultPerSec    = 2

	// How much of the body feeds each analysis stage.
	mentionWindow   = 500
	sentimentWindow = 1000
)

const userAgent = "Mozilla/5.0"

// Result is the response for one summarize request.
type Result struct {
	Summary          string           `json:"summary"`
	StockMentions    []string         `json:"stock_mentions"`
	Sentiment        models.Sentiment `json:"sentiment"`
	SentimentScore   float64          `json:"sentiment_score"`
	WordCount        int              `json:"word_count,omitempty"`
	SummaryLength    int              `json:"summary_length,omitempty"`
	ExtractionMethod string           `json:"extraction_method,omitempty"`
	Success          bool             `json:"analysis_success"`
}

// Service fetches and summarizes articles. Requests are rate limited
// so a burst of dashboard clicks cannot hammer publisher sites, and
// results are cached per URL since articles do not change once read.
type Service struct {
	client    *http.Client
	limiter   *infra.RateLimiter
	cache     *infra.Cache
	extractor *extract.Extractor
	log       *logbuf.Buffer
}

// NewService builds a summarizer limited to perSec fetches per second;
// perSec <= 0 selects the default.
func NewService(extractor *extract.Extractor, log *logbuf.Buffer, perSec int) *Service {
	if perSec <= 0 {
		perSec = defaultPerSec
	}
	return &Service{
		client:    &http.Client{Timeout: resolveTimeout},
		limiter:   infra.NewRateLimiter(perSec, time.Second),
		cache:     infra.NewCache(resultCacheTTL),
		extractor: extractor,
		log:       log,
	}
}

// Summarize fetches the URL and produces the tagged summary. Pages
// with too little extractable text yield Success=false rather than an
// error: the dashboard shows the message inline.
func (s *Service) Summarize(ctx context.Context, rawURL string) (*Result, error) {
	if rawURL == "" {
		return &Result{
			Summary:   "No URL provided",
			Sentiment: models.SentimentNeutral,
		}, nil
	}

	if cached, ok := s.cache.Get(rawURL); ok {
		return cached.(*Result), nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resolved := s.resolveFinalURL(ctx, rawURL)
	content, err := s.fetchContent(ctx, resolved)
	if err != nil {
		s.logf("summarize fetch failed: %v", err)
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	if wordCount(content) < minContentWords {
		return &Result{
			Summary:        "Could not extract enough article content for summarization",
			StockMentions:  []string{},
			Sentiment:      models.SentimentNeutral,
			SentimentScore: 0.5,
		}, nil
	}

	summary := firstSentences(content, summarySentences)

	mentions := s.extractor.Extract(head(content, mentionWindow))
	if len(mentions) > maxMentions {
		mentions = mentions[:maxMentions]
	}
	label, score := sentiment.Score(head(content, sentimentWindow), "")

	s.logf("summarized %s (%d words)", resolved, wordCount(content))

	result := &Result{
		Summary:          summary,
		StockMentions:    mentions,
		Sentiment:        label,
		SentimentScore:   score,
		WordCount:        wordCount(content),
		SummaryLength:    wordCount(summary),
		ExtractionMethod: "Paragraph",
		Success:          true,
	}
	s.cache.Set(rawURL, result)
	return result, nil
}

// resolveFinalURL follows redirects with a HEAD request. Aggregator
// links (Google News in particular) bounce through trackers; failing
// to resolve just means we fetch the original URL.
func (s *Service) resolveFinalURL(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return rawURL
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return rawURL
	}
	defer resp.Body.Close()
	return resp.Request.URL.String()
}

// fetchContent downloads the page and joins its paragraph text.
func (s *Service) fetchContent(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, " "), nil
}

func (s *Service) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Addf(format, args...)
	}
}

// firstSentences keeps the leading n sentences, period-delimited.
// Splitting on ". " is a heuristic: abbreviations like "Rs. 500" count
// as sentence ends, and period-free text gains a trailing period. Good
// enough for a preview snippet.
func firstSentences(text string, n int) string {
	sentences := strings.SplitN(text, ". ", n+1)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	joined := strings.Join(sentences, ". ")
	if !strings.HasSuffix(joined, ".") {
		joined += "."
	}
	return joined
}

// head returns the first n characters of s.
func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
