package news

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/agbru/finagent/internal/config"
	"github.com/agbru/finagent/internal/dataset"
	apperrors "github.com/agbru/finagent/internal/errors"
	"github.com/agbru/finagent/internal/logging"
	"github.com/agbru/finagent/internal/orchestration"
)

// Compile-time interface compliance check.
var _ orchestration.NewsCollector = (*Scraper)(nil)

// defaultBaseURL is the search page queried for headlines.
const defaultBaseURL = "https://news.google.com"

// maxRounds caps retrieval rounds regardless of what the caller requests.
const maxRounds = 5

// requestTimeout bounds a single page fetch.
const requestTimeout = 20 * time.Second

// Scraper collects news headlines from a public search page. It requires no
// credential and is constructed unconditionally during agent initialization.
type Scraper struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

// Option configures a Scraper during construction.
type Option func(*Scraper)

// WithBaseURL overrides the search endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(s *Scraper) { s.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) { s.client = client }
}

// NewScraper constructs a Scraper honoring the proxy and TLS settings from
// the configuration.
func NewScraper(cfg *config.Config, log logging.Logger, opts ...Option) *Scraper {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.SSLVerifyDisabled() {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	s := &Scraper{
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CollectNews gathers headlines matching keyword over up to rounds search
// pages and returns them as a frame with headline, url, and source columns.
// Duplicate links across rounds are dropped. When savePath is non-empty and
// at least one headline was found, the frame is also written as CSV.
func (s *Scraper) CollectNews(ctx context.Context, keyword string, rounds int, savePath string) (*dataset.Frame, error) {
	if rounds < 1 {
		rounds = 1
	}
	if rounds > maxRounds {
		rounds = maxRounds
	}

	frame := dataset.NewFrame("headline", "url", "source")
	seen := make(map[string]bool)

	for round := 1; round <= rounds; round++ {
		if ctx.Err() != nil {
			return nil, apperrors.CollectionError{Operation: "collect news", Cause: ctx.Err()}
		}
		headlines, err := s.fetchPage(ctx, keyword, round)
		if err != nil {
			return nil, apperrors.CollectionError{Operation: "collect news", Cause: err}
		}
		now := time.Now().UTC()
		for _, h := range headlines {
			if seen[h.link] {
				continue
			}
			seen[h.link] = true
			if err := frame.AppendRow(now, h.title, h.link, h.source); err != nil {
				return nil, apperrors.CollectionError{Operation: "collect news", Cause: err}
			}
		}
	}

	s.log.Debug("headlines collected",
		logging.String("keyword", keyword),
		logging.Int("rows", frame.NumRows()))

	if savePath != "" && !frame.Empty() {
		if err := frame.WriteCSV(savePath); err != nil {
			return nil, apperrors.CollectionError{Operation: "save news", Cause: err}
		}
	}
	return frame, nil
}

type headline struct {
	title  string
	link   string
	source string
}

// fetchPage retrieves one search result page and extracts headline links.
func (s *Scraper) fetchPage(ctx context.Context, keyword string, page int) ([]headline, error) {
	endpoint := fmt.Sprintf("%s/search", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("q", keyword)
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", "finagent/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	base := resp.Request.URL
	var out []headline
	doc.Find("article a[href]").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		href, _ := sel.Attr("href")
		if title == "" || href == "" {
			return
		}
		resolved := resolveLink(base, href)
		if resolved == "" {
			return
		}
		out = append(out, headline{
			title:  title,
			link:   resolved,
			source: hostOf(resolved),
		})
	})
	return out, nil
}

// resolveLink makes href absolute against base and filters out fragments and
// non-HTTP schemes.
func resolveLink(base *url.URL, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host == "" || resolved.Path == "" {
		return ""
	}
	return resolved.String()
}

func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
