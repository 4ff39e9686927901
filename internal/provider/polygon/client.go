package polygon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"fxmacro/internal/model"
	"fxmacro/internal/provider"
)

const (
	vendorName     = "Polygon"
	defaultBaseURL = "https://api.polygon.io"

	// Max results per aggregates request
	maxLimit = 50000
)

// baseTransport returns the HTTP transport configuration used for Polygon
// requests.
func baseTransport() *http.Transport {
	return &http.Transport{
		ResponseHeaderTimeout: 30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		DisableKeepAlives:     true,
	}
}

// Client fetches OHLCV aggregates from the Polygon REST API and normalizes
// them into the canonical bar schema.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient creates a Polygon client with the given API key.
func NewClient(apiKey string) *Client {
	rc := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTransport(baseTransport()).
		SetTimeout(time.Minute)
	return &Client{http: rc, apiKey: apiKey}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.http.SetBaseURL(u)
}

// GetName returns the vendor name.
func (c *Client) GetName() string { return vendorName }

// Close closes connections.
func (c *Client) Close() error { return nil }

// FetchBars fetches aggregates for [from, to] at the given granularity and
// returns a canonical series. Currency-pair symbols are translated to
// Polygon's prefixed form before the call. Failures are logged here and
// returned classified; no data is ever returned alongside an error.
func (c *Client) FetchBars(ctx context.Context, symbol string, g model.Granularity, from, to time.Time) (*model.Series, error) {
	timespan, err := g.PolygonTimespan()
	if err != nil {
		return nil, err
	}
	ticker := CurrencyTicker(symbol)

	var out AggregatesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"adjusted": "true",
			"limit":    strconv.Itoa(maxLimit),
			"sort":     "asc",
			"apiKey":   c.apiKey,
		}).
		SetResult(&out).
		Get(fmt.Sprintf("/v2/aggs/ticker/%s/range/1/%s/%d/%d", ticker, timespan, from.UnixMilli(), to.UnixMilli()))
	if err != nil {
		slog.Error("polygon request failed", "symbol", symbol, "ticker", ticker, "error", err)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrTransport, err)
	}
	if resp.IsError() {
		err := fmt.Errorf("API status %d: %s", resp.StatusCode(), resp.String())
		slog.Error("polygon request rejected", "symbol", symbol, "ticker", ticker, "status", resp.StatusCode())
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrTransport, err)
	}
	if out.Status != "OK" && out.Status != "DELAYED" {
		err := fmt.Errorf("API status not OK: %s", out.Status)
		slog.Error("polygon response not OK", "symbol", symbol, "ticker", ticker, "api_status", out.Status)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrMalformed, err)
	}
	if len(out.Results) == 0 {
		slog.Warn("polygon returned no bars", "symbol", symbol, "ticker", ticker, "from", from, "to", to)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrEmptyResult, nil)
	}

	bars := make([]model.Bar, 0, len(out.Results))
	for _, raw := range out.Results {
		bars = append(bars, raw.ToBar())
	}
	bars = model.NormalizeBars(symbol, bars)

	slog.Info("polygon bars fetched", "symbol", symbol, "ticker", ticker, "count", len(bars))
	return &model.Series{
		Symbol:    symbol,
		Vendor:    vendorName,
		HasVolume: true,
		Bars:      bars,
	}, nil
}
