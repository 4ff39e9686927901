package fred

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"fxmacro/internal/model"
	"fxmacro/internal/provider"
)

const (
	vendorName     = "FRED"
	defaultBaseURL = "https://api.stlouisfed.org"

	dateLayout = "2006-01-02"
)

// KnownIndicators lists the FRED series this project tracks. Unknown codes
// are still fetched (FRED is the authority on what exists) but logged.
var KnownIndicators = []string{
	"CPIAUCSL", // CPI, all urban consumers
	"FEDFUNDS", // effective federal funds rate
	"GDP",      // gross domestic product
	"UNRATE",   // unemployment rate
	"NAPM",     // ISM manufacturing PMI
	"DTWEXBGS", // trade-weighted dollar index, broad goods and services
}

// Client fetches economic indicator series from the FRED API and normalizes
// them into the canonical macro schema. YoY lags are injected per indicator
// rather than hard-coded: indicators absent from the map get no YoY column.
type Client struct {
	http    *resty.Client
	apiKey  string
	yoyLags map[string]int
}

// NewClient creates a FRED client. yoyLags maps indicator code to the number
// of trailing periods used for the year-over-year change (12 for a monthly
// inflation index).
func NewClient(apiKey string, yoyLags map[string]int) *Client {
	rc := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(time.Minute)
	return &Client{http: rc, apiKey: apiKey, yoyLags: yoyLags}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.http.SetBaseURL(u)
}

// GetName returns the vendor name.
func (c *Client) GetName() string { return vendorName }

// Close closes connections.
func (c *Client) Close() error { return nil }

// FetchSeries fetches the indicator's full history, restricts it to the
// closed interval [from, to] and derives period-over-period (and, for
// configured indicators, year-over-year) changes. Missing-value placeholders
// ('.') are skipped. Failures are logged here and returned classified.
func (c *Client) FetchSeries(ctx context.Context, indicator string, from, to time.Time) (*model.MacroSeries, error) {
	if !isKnown(indicator) {
		slog.Warn("indicator not in tracked set", "indicator", indicator)
	}

	var out ObservationsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"series_id": indicator,
			"api_key":   c.apiKey,
			"file_type": "json",
		}).
		SetResult(&out).
		SetError(&out).
		Get("/fred/series/observations")
	if err != nil {
		slog.Error("fred request failed", "indicator", indicator, "error", err)
		return nil, provider.NewFetchError(vendorName, indicator, provider.ErrTransport, err)
	}
	if resp.IsError() {
		err := fmt.Errorf("API status %d: %s", resp.StatusCode(), out.ErrorMessage)
		slog.Error("fred request rejected", "indicator", indicator, "status", resp.StatusCode(), "message", out.ErrorMessage)
		return nil, provider.NewFetchError(vendorName, indicator, provider.ErrTransport, err)
	}

	obs := make([]model.Observation, 0, len(out.Observations))
	for _, raw := range out.Observations {
		if raw.Value == "." {
			continue
		}
		date, err := time.Parse(dateLayout, raw.Date)
		if err != nil {
			slog.Error("fred date unparsable", "indicator", indicator, "date", raw.Date)
			return nil, provider.NewFetchError(vendorName, indicator, provider.ErrMalformed, err)
		}
		value, err := strconv.ParseFloat(raw.Value, 64)
		if err != nil {
			slog.Error("fred value unparsable", "indicator", indicator, "date", raw.Date, "value", raw.Value)
			return nil, provider.NewFetchError(vendorName, indicator, provider.ErrMalformed, err)
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		obs = append(obs, model.Observation{Date: date, Value: value})
	}
	if len(obs) == 0 {
		slog.Warn("fred returned no observations in range", "indicator", indicator, "from", from, "to", to)
		return nil, provider.NewFetchError(vendorName, indicator, provider.ErrEmptyResult, nil)
	}
	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })

	Derive(obs, c.yoyLags[indicator])

	slog.Info("fred series fetched", "indicator", indicator, "count", len(obs), "yoy", c.yoyLags[indicator] > 0)
	return &model.MacroSeries{Indicator: indicator, Observations: obs}, nil
}

func isKnown(indicator string) bool {
	for _, k := range KnownIndicators {
		if k == indicator {
			return true
		}
	}
	return false
}
