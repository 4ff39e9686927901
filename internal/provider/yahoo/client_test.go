package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fxmacro/internal/model"
	"fxmacro/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient()
	c.SetBaseURL(srv.URL)
	return c
}

// Fixture covers the structures FetchBars must collapse: nested quote arrays,
// a null minute in the middle, and an adjclose block that must be ignored.
const chartFixture = `{
  "chart": {
    "result": [
      {
        "meta": {"symbol": "GBPUSD=X", "currency": "USD", "dataGranularity": "1m"},
        "timestamp": [1710246000, 1710246060, 1710246120, 1710246180],
        "indicators": {
          "quote": [
            {
              "open":   [1.2781, 1.2783, null, 1.2786],
              "high":   [1.2784, 1.2786, null, 1.2789],
              "low":    [1.2780, 1.2782, null, 1.2785],
              "close":  [1.2783, 1.2785, null, 1.2787],
              "volume": [0, 0, null, 0]
            }
          ],
          "adjclose": [{"adjclose": [1.2783, 1.2785, null, 1.2787]}]
        }
      }
    ],
    "error": null
  }
}`

func TestFetchBars(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chartFixture))
	})

	from := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	series, err := c.FetchBars(context.Background(), "GBPUSD=X", model.Day, from, to)
	require.NoError(t, err)

	t.Run("request shape", func(t *testing.T) {
		assert.Equal(t, "/v8/finance/chart/GBPUSD=X", gotPath)
		assert.Equal(t, "1d", gotQuery["interval"][0])
		assert.NotEmpty(t, gotQuery["period1"])
		assert.NotEmpty(t, gotQuery["period2"])
	})

	t.Run("canonical schema with null slot dropped", func(t *testing.T) {
		assert.Equal(t, "GBPUSD=X", series.Symbol)
		assert.Equal(t, "Yahoo", series.Vendor)
		require.Len(t, series.Bars, 3)
		for i := 1; i < len(series.Bars); i++ {
			assert.True(t, series.Bars[i].Timestamp.After(series.Bars[i-1].Timestamp))
		}
	})

	t.Run("epoch seconds parsed", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, 3, 12, 12, 20, 0, 0, time.UTC), series.Bars[0].Timestamp)
		assert.Equal(t, 1.2781, series.Bars[0].Open)
		assert.Equal(t, 1.2787, series.Bars[2].Close)
	})

	t.Run("fx feed has no usable volume", func(t *testing.T) {
		assert.False(t, series.HasVolume)
	})
}

func TestFetchBarsFailures(t *testing.T) {
	from := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	t.Run("chart error object", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
		})
		series, err := c.FetchBars(context.Background(), "BOGUS=X", model.Day, from, to)
		require.ErrorIs(t, err, provider.ErrMalformed)
		assert.Nil(t, series)
	})

	t.Run("empty result list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
		})
		_, err := c.FetchBars(context.Background(), "GBPUSD=X", model.Day, from, to)
		require.ErrorIs(t, err, provider.ErrEmptyResult)
	})

	t.Run("all quote slots null", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"GBPUSD=X"},"timestamp":[1710246000],"indicators":{"quote":[{"open":[null],"high":[null],"low":[null],"close":[null],"volume":[null]}]}}],"error":null}}`))
		})
		_, err := c.FetchBars(context.Background(), "GBPUSD=X", model.Day, from, to)
		require.ErrorIs(t, err, provider.ErrEmptyResult)
	})

	t.Run("misaligned quote arrays", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"GBPUSD=X"},"timestamp":[1710246000,1710246060],"indicators":{"quote":[{"open":[1.1],"high":[1.1],"low":[1.1],"close":[1.1],"volume":[0]}]}}],"error":null}}`))
		})
		_, err := c.FetchBars(context.Background(), "GBPUSD=X", model.Day, from, to)
		require.ErrorIs(t, err, provider.ErrMalformed)
	})

	t.Run("http error status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		})
		_, err := c.FetchBars(context.Background(), "GBPUSD=X", model.Day, from, to)
		require.ErrorIs(t, err, provider.ErrTransport)
	})

	t.Run("minute range beyond lookback rejected locally", func(t *testing.T) {
		c := NewClient()
		old := time.Now().UTC().AddDate(0, -6, 0)
		_, err := c.FetchBars(context.Background(), "GBPUSD=X", model.Minute, old, old.AddDate(0, 0, 1))
		require.Error(t, err)
		assert.NotErrorIs(t, err, provider.ErrTransport)
	})
}
