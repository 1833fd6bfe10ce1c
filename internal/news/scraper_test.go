package news

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/agbru/finagent/internal/config"
	apperrors "github.com/agbru/finagent/internal/errors"
	"github.com/agbru/finagent/internal/logging"
)

const searchPage = `<html><body>
<article><h3><a href="/articles/apple-earnings">Apple beats earnings expectations</a></h3></article>
<article><h3><a href="https://example.com/markets/aapl-rally">AAPL shares rally on guidance</a></h3></article>
<article><h3><a href="mailto:tips@example.com">Send us a tip</a></h3></article>
<article><h3><a href="/articles/apple-earnings">Apple beats earnings expectations</a></h3></article>
</body></html>`

func newTestScraper(t *testing.T, handler http.HandlerFunc) *Scraper {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewScraper(config.New(), logging.Nop(), WithBaseURL(srv.URL))
}

func TestCollectNews(t *testing.T) {
	var gotQuery string
	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, searchPage)
	})

	frame, err := s.CollectNews(context.Background(), "AAPL", 1, "")
	if err != nil {
		t.Fatalf("CollectNews() error: %v", err)
	}
	if gotQuery != "AAPL" {
		t.Errorf("query = %q, want AAPL", gotQuery)
	}
	// Duplicate link and non-HTTP link are dropped.
	if frame.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", frame.NumRows())
	}
	if got := frame.Records[1][2]; got != "example.com" {
		t.Errorf("source = %q, want example.com", got)
	}
}

func TestCollectNewsRoundsAreBounded(t *testing.T) {
	var pages []string
	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		pages = append(pages, r.URL.Query().Get("page"))
		fmt.Fprint(w, searchPage)
	})

	if _, err := s.CollectNews(context.Background(), "AAPL", 100, ""); err != nil {
		t.Fatalf("CollectNews() error: %v", err)
	}
	if len(pages) != maxRounds {
		t.Errorf("fetched %d pages, want %d", len(pages), maxRounds)
	}

	pages = nil
	if _, err := s.CollectNews(context.Background(), "AAPL", 0, ""); err != nil {
		t.Fatalf("CollectNews() error: %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("fetched %d pages, want 1 for rounds=0", len(pages))
	}
}

func TestCollectNewsSavesCSV(t *testing.T) {
	s := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchPage)
	})

	path := filepath.Join(t.TempDir(), "news", "aapl_news_demo.csv")
	frame, err := s.CollectNews(context.Background(), "AAPL", 1, path)
	if err != nil {
		t.Fatalf("CollectNews() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("saved CSV missing: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	// Header plus one line per headline.
	if len(records) != frame.NumRows()+1 {
		t.Errorf("CSV has %d records, want %d", len(records), frame.NumRows()+1)
	}
}

func TestCollectNewsNoResultsSkipsSave(t *testing.T) {
	s := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body><p>nothing here</p></body></html>")
	})

	path := filepath.Join(t.TempDir(), "empty.csv")
	frame, err := s.CollectNews(context.Background(), "AAPL", 1, path)
	if err != nil {
		t.Fatalf("CollectNews() error: %v", err)
	}
	if !frame.Empty() {
		t.Errorf("frame has %d rows, want 0", frame.NumRows())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("CSV was written for an empty result")
	}
}

func TestCollectNewsHTTPError(t *testing.T) {
	s := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	})
	_, err := s.CollectNews(context.Background(), "AAPL", 1, "")
	var collErr apperrors.CollectionError
	if !errors.As(err, &collErr) {
		t.Fatalf("CollectNews() error = %v, want CollectionError", err)
	}
}

func TestCollectNewsHonorsContext(t *testing.T) {
	s := newTestScraper(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchPage)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.CollectNews(ctx, "AAPL", 1, ""); err == nil {
		t.Error("CollectNews() succeeded with canceled context")
	}
}
