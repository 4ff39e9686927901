package model

import (
	"fmt"
	"strings"
)

// Granularity is the bar size requested from a market data vendor.
type Granularity string

const (
	Minute Granularity = "minute"
	Hour   Granularity = "hour"
	Day    Granularity = "day"
	Week   Granularity = "week"
	Month  Granularity = "month"
)

// ParseGranularity converts a user supplied string to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minute", "min", "1m":
		return Minute, nil
	case "hour", "1h":
		return Hour, nil
	case "day", "daily", "1d":
		return Day, nil
	case "week", "1w":
		return Week, nil
	case "month", "1mo":
		return Month, nil
	default:
		return "", fmt.Errorf("unsupported granularity %q (use: minute, hour, day, week, month)", s)
	}
}

// YahooInterval returns the Yahoo chart API interval string.
func (g Granularity) YahooInterval() (string, error) {
	switch g {
	case Minute:
		return "1m", nil
	case Hour:
		return "1h", nil
	case Day:
		return "1d", nil
	case Week:
		return "1wk", nil
	case Month:
		return "1mo", nil
	default:
		return "", fmt.Errorf("granularity %q not supported by Yahoo", string(g))
	}
}

// PolygonTimespan returns the Polygon aggregates timespan path segment.
func (g Granularity) PolygonTimespan() (string, error) {
	switch g {
	case Minute, Hour, Day, Week, Month:
		return string(g), nil
	default:
		return "", fmt.Errorf("granularity %q not supported by Polygon", string(g))
	}
}
