package model

import (
	"log/slog"
	"sort"
	"time"
)

// Bar represents one OHLCV bar (minute/hourly/daily etc.) in the canonical schema.
// Timestamps are true instants; vendor epoch formats are converted before a Bar
// is built.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume,omitempty"`
}

// Series is one instrument's canonical bar table. Bars are ordered by
// timestamp ascending with no duplicates; NormalizeBars enforces this.
// HasVolume marks whether the Volume column carries vendor data at all
// (some FX feeds have none).
type Series struct {
	Symbol    string
	Vendor    string
	HasVolume bool
	Bars      []Bar
}

// Len returns the number of bars in the series. Safe on a nil series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// NormalizeBars sorts bars ascending by timestamp and drops duplicate
// timestamps, keeping the first occurrence. Vendors occasionally repeat a
// minute across paginated chunks; downstream return math requires a strictly
// increasing index. OHLC ordering violations are logged and passed through
// unchanged.
func NormalizeBars(symbol string, bars []Bar) []Bar {
	if len(bars) == 0 {
		return bars
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Timestamp.Before(bars[j].Timestamp)
	})

	out := bars[:0]
	var last time.Time
	dropped := 0
	for i, b := range bars {
		if i > 0 && !b.Timestamp.After(last) {
			dropped++
			continue
		}
		if b.Low > b.High || b.Open > b.High || b.Open < b.Low || b.Close > b.High || b.Close < b.Low {
			slog.Warn("OHLC ordering violation", "symbol", symbol, "timestamp", b.Timestamp, "open", b.Open, "high", b.High, "low", b.Low, "close", b.Close)
		}
		out = append(out, b)
		last = b.Timestamp
	}
	if dropped > 0 {
		slog.Warn("dropped duplicate timestamps", "symbol", symbol, "count", dropped)
	}
	return out
}
