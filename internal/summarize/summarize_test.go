package summarize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/pkg/models"
)

const articleHTML = `<html><body>
<nav>Menu</nav>
<p>RELIANCE shares surge after the company reported strong quarterly earnings with record profit growth.</p>
<p>Analysts said the rally could continue as revenue expanded across the energy and retail businesses during the quarter.</p>
<p>The stock has gained steadily this year and remains a heavyweight on the exchanges, with investors watching the upcoming annual general meeting.</p>
<p>Broader indices also closed higher on the day, supported by buying in index heavyweights and favourable global cues overnight.</p>
</body></html>`

func testService(t *testing.T) *Service {
	t.Helper()
	table, err := refdata.Load()
	if err != nil {
		t.Fatalf("load reference table: %v", err)
	}
	return NewService(extract.New(table), nil, 0)
}

func TestSummarizeArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	s := testService(t)
	res, err := s.Summarize(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Sentiment != models.SentimentPositive {
		t.Errorf("expected Positive sentiment, got %s", res.Sentiment)
	}
	if len(res.StockMentions) == 0 || res.StockMentions[0] != "RELIANCE" {
		t.Errorf("expected RELIANCE mention, got %v", res.StockMentions)
	}
	if strings.Contains(res.Summary, "<p>") || strings.Contains(res.Summary, "Menu") {
		t.Errorf("summary should contain paragraph text only: %q", res.Summary)
	}
	// First three sentences only.
	if strings.Contains(res.Summary, "global cues") {
		t.Errorf("summary should stop after three sentences: %q", res.Summary)
	}
	if res.WordCount < minContentWords {
		t.Errorf("unexpected word count %d", res.WordCount)
	}
}

func TestSummarizeFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleHTML))
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/article", http.StatusFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := testService(t)
	res, err := s.Summarize(context.Background(), server.URL+"/redirect")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success via redirect, got %+v", res)
	}
}

func TestSummarizeCachesResults(t *testing.T) {
	var gets int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
		}
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	s := testService(t)
	for i := 0; i < 3; i++ {
		if _, err := s.Summarize(context.Background(), server.URL); err != nil {
			t.Fatalf("summarize %d: %v", i, err)
		}
	}
	if gets != 1 {
		t.Errorf("expected a single content fetch, got %d", gets)
	}
}

func TestSummarizeThinContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Too short.</p></body></html>`))
	}))
	defer server.Close()

	s := testService(t)
	res, err := s.Summarize(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if res.Success {
		t.Error("expected failure for thin content")
	}
	if res.Sentiment != models.SentimentNeutral || res.SentimentScore != 0.5 {
		t.Errorf("expected Neutral/0.5, got %s/%.2f", res.Sentiment, res.SentimentScore)
	}
}

func TestSummarizeEmptyURL(t *testing.T) {
	s := testService(t)
	res, err := s.Summarize(context.Background(), "")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if res.Success {
		t.Error("expected failure for empty URL")
	}
	if res.Summary != "No URL provided" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestSummarizeFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	s := testService(t)
	if _, err := s.Summarize(context.Background(), server.URL); err == nil {
		t.Error("expected error for 404 page")
	}
}

func TestFirstSentences(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"One. Two. Three. Four.", 3, "One. Two. Three."},
		{"Only one sentence", 3, "Only one sentence."},
		{"A. B.", 3, "A. B."},
	}
	for _, tt := range tests {
		if got := firstSentences(tt.in, tt.n); got != tt.want {
			t.Errorf("firstSentences(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestHead(t *testing.T) {
	if got := head("abcdef", 3); got != "abc" {
		t.Errorf("head = %q", got)
	}
	if got := head("ab", 10); got != "ab" {
		t.Errorf("head should return whole string, got %q", got)
	}
}
