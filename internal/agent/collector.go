package agent

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/agbru/finagent/internal/config"
	"github.com/agbru/finagent/internal/dataset"
	apperrors "github.com/agbru/finagent/internal/errors"
	"github.com/agbru/finagent/internal/logging"
	"github.com/agbru/finagent/internal/orchestration"
)

// Compile-time interface compliance check.
var _ orchestration.DataCollector = (*Collector)(nil)

// defaultBaseURL is the chart endpoint queried for daily candles.
const defaultBaseURL = "https://query1.finance.yahoo.com"

// requestTimeout bounds a single provider round trip.
const requestTimeout = 30 * time.Second

// dateLayout is the wire format for range boundaries.
const dateLayout = "2006-01-02"

// Collector is the default market data agent. It fetches daily candles over
// HTTPS and answers analysis tasks with a return-based sentiment heuristic.
type Collector struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     logging.Logger
}

// Option configures a Collector during construction.
type Option func(*Collector)

// WithBaseURL overrides the provider endpoint. Used by tests to point at a
// local server.
func WithBaseURL(u string) Option {
	return func(c *Collector) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Collector) { c.client = client }
}

// New constructs a Collector. Proxy settings are honored via the standard
// HTTP_PROXY and HTTPS_PROXY environment variables, and certificate
// verification can be disabled through the configuration for development
// against intercepting proxies.
func New(apiKey string, cfg *config.Config, log logging.Logger, opts ...Option) *Collector {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.SSLVerifyDisabled() {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	c := &Collector{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse mirrors the subset of the provider payload this agent reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchData retrieves daily candles for symbol over [startDate, endDate].
// Rows with no closing price (market holidays in the provider feed) are
// dropped. An empty range yields an empty frame, not an error.
func (c *Collector) FetchData(ctx context.Context, symbol, source, startDate, endDate string) (*dataset.Frame, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, apperrors.CollectionError{Operation: "fetch " + symbol, Cause: err}
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, apperrors.CollectionError{Operation: "fetch " + symbol, Cause: err}
	}
	// The provider treats period2 as exclusive.
	end = end.AddDate(0, 0, 1)

	var payload chartResponse
	if err := c.getChart(ctx, symbol, start, end, &payload); err != nil {
		return nil, apperrors.CollectionError{Operation: "fetch " + symbol, Cause: err}
	}
	if e := payload.Chart.Error; e != nil {
		return nil, apperrors.CollectionError{
			Operation: "fetch " + symbol,
			Cause:     fmt.Errorf("provider error %s: %s", e.Code, e.Description),
		}
	}

	frame := dataset.NewFrame("open", "high", "low", "close", "volume")
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return frame, nil
	}
	result := payload.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		row := [5]string{
			formatPrice(at(quote.Open, i)),
			formatPrice(at(quote.High, i)),
			formatPrice(at(quote.Low, i)),
			formatPrice(quote.Close[i]),
			formatVolume(atInt(quote.Volume, i)),
		}
		when := time.Unix(ts, 0).UTC()
		if err := frame.AppendRow(when, row[:]...); err != nil {
			return nil, apperrors.CollectionError{Operation: "fetch " + symbol, Cause: err}
		}
	}

	c.log.Debug("candles fetched",
		logging.String("symbol", symbol),
		logging.String("source", source),
		logging.Int("rows", frame.NumRows()))
	return frame, nil
}

func (c *Collector) getChart(ctx context.Context, symbol string, start, end time.Time, out *chartResponse) error {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	q := req.URL.Query()
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", "1d")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "finagent/1.0")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ExecuteTask answers an analysis query by fetching the closing prices for
// the range and classifying the balance of up and down sessions. The answer
// is an opaque summary string; a range with no data yields an empty result.
func (c *Collector) ExecuteTask(ctx context.Context, query, symbol, source, startDate, endDate string) (dataset.Result, error) {
	frame, err := c.FetchData(ctx, symbol, source, startDate, endDate)
	if err != nil {
		return dataset.Result{}, apperrors.WrapError(err, "execute task %q", query)
	}
	closes, err := closingPrices(frame)
	if err != nil {
		return dataset.Result{}, apperrors.WrapError(err, "execute task %q", query)
	}
	if len(closes) < 2 {
		return dataset.Result{Kind: dataset.KindEmpty}, nil
	}

	up, down := 0, 0
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			up++
		case closes[i] < closes[i-1]:
			down++
		}
	}
	summary := fmt.Sprintf("%s (%d up / %d down over %d sessions)",
		classifySentiment(up, down), up, down, len(closes))
	c.log.Debug("task executed",
		logging.String("symbol", symbol),
		logging.String("sentiment", summary))
	return dataset.OpaqueOf(summary), nil
}

// closingPrices extracts the close column as floats.
func closingPrices(frame *dataset.Frame) ([]float64, error) {
	col := -1
	for i, name := range frame.Columns {
		if name == "close" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("frame has no close column")
	}
	closes := make([]float64, 0, len(frame.Records))
	for _, rec := range frame.Records {
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			return nil, fmt.Errorf("bad close value %q: %w", rec[col], err)
		}
		closes = append(closes, v)
	}
	return closes, nil
}

// classifySentiment maps the up/down session balance to a label. The margin
// of one session keeps near-even ranges neutral.
func classifySentiment(up, down int) string {
	switch {
	case up > down+1:
		return "positive"
	case down > up+1:
		return "negative"
	default:
		return "neutral"
	}
}

func at(vals []*float64, i int) *float64 {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}

func atInt(vals []*int64, i int) *int64 {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}

func formatVolume(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
