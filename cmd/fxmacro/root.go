package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fxmacro",
	Short: "FX market data and US macro release pipeline",
	Long: `fxmacro fetches OHLC bars for FX pairs and index levels from Yahoo or
Polygon, US economic indicator series from FRED, normalizes everything into
one canonical schema and derives relative-volatility signals for windowing
price action around scheduled macro releases.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(barsCmd)
	rootCmd.AddCommand(macroCmd)
}

// parseDateRange parses --from/--to values as YYYY-MM-DD in UTC.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(time.DateOnly, fromStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse --from: %w", err)
	}
	to, err := time.ParseInLocation(time.DateOnly, toStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse --to: %w", err)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", toStr, fromStr)
	}
	return from, to, nil
}
