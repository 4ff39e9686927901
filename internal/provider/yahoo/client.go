package yahoo

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
	vendorName     = "Yahoo"
	defaultBaseURL = "https://query1.finance.yahoo.com"

	// Yahoo serves minute bars only for the trailing month
	minuteLookback = 30 * 24 * time.Hour
)

// Client fetches OHLCV bars from the Yahoo chart API and normalizes them
// into the canonical bar schema. No credential is required.
type Client struct {
	http *resty.Client
}

// NewClient creates a Yahoo client.
func NewClient() *Client {
	rc := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(time.Minute).
		SetHeader("User-Agent", "Mozilla/5.0 (fxmacro)")
	return &Client{http: rc}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.http.SetBaseURL(u)
}

// GetName returns the vendor name.
func (c *Client) GetName() string { return vendorName }

// Close closes connections.
func (c *Client) Close() error { return nil }

// FetchBars fetches bars for [from, to] at the given granularity and returns
// a canonical series. Yahoo's nested quote arrays are flattened into bars;
// slots where any OHLC value is null are skipped the way a dropna would.
// Failures are logged here and returned classified.
func (c *Client) FetchBars(ctx context.Context, symbol string, g model.Granularity, from, to time.Time) (*model.Series, error) {
	interval, err := g.YahooInterval()
	if err != nil {
		return nil, err
	}
	if g == model.Minute && time.Since(from) > minuteLookback {
		return nil, fmt.Errorf("yahoo minute bars are only available for the trailing 30 days (from=%s)", from.Format("2006-01-02"))
	}

	var out ChartResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(from.Unix(), 10),
			"period2":  strconv.FormatInt(to.Unix(), 10),
			"interval": interval,
			"events":   "div,splits",
		}).
		SetResult(&out).
		Get("/v8/finance/chart/" + symbol)
	if err != nil {
		slog.Error("yahoo request failed", "symbol", symbol, "error", err)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrTransport, err)
	}
	if resp.IsError() {
		err := fmt.Errorf("API status %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
		slog.Error("yahoo request rejected", "symbol", symbol, "status", resp.StatusCode())
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrTransport, err)
	}
	if out.Chart.Error != nil {
		err := fmt.Errorf("API error %s: %s", out.Chart.Error.Code, out.Chart.Error.Description)
		slog.Error("yahoo chart error", "symbol", symbol, "code", out.Chart.Error.Code)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrMalformed, err)
	}
	if len(out.Chart.Result) == 0 {
		slog.Warn("yahoo returned no result", "symbol", symbol)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrEmptyResult, nil)
	}

	result := out.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		slog.Warn("yahoo returned no bars", "symbol", symbol, "from", from, "to", to)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrEmptyResult, nil)
	}
	quote := result.Indicators.Quote[0]
	if len(quote.Open) != len(result.Timestamp) || len(quote.High) != len(result.Timestamp) ||
		len(quote.Low) != len(result.Timestamp) || len(quote.Close) != len(result.Timestamp) {
		err := fmt.Errorf("quote arrays misaligned: %d closes for %d timestamps", len(quote.Close), len(result.Timestamp))
		slog.Error("yahoo payload misaligned", "symbol", symbol, "error", err)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrMalformed, err)
	}

	bars := make([]model.Bar, 0, len(result.Timestamp))
	hasVolume := false
	for i, ts := range result.Timestamp {
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		b := model.Bar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      *quote.Open[i],
			High:      *quote.High[i],
			Low:       *quote.Low[i],
			Close:     *quote.Close[i],
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			b.Volume = *quote.Volume[i]
			if b.Volume > 0 {
				hasVolume = true
			}
		}
		bars = append(bars, b)
	}
	if len(bars) == 0 {
		slog.Warn("yahoo bars all null", "symbol", symbol, "from", from, "to", to)
		return nil, provider.NewFetchError(vendorName, symbol, provider.ErrEmptyResult, nil)
	}
	bars = model.NormalizeBars(symbol, bars)

	slog.Info("yahoo bars fetched", "symbol", symbol, "count", len(bars))
	return &model.Series{
		Symbol:    symbol,
		Vendor:    vendorName,
		HasVolume: hasVolume,
		Bars:      bars,
	}, nil
}
