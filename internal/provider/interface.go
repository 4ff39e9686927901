package provider

import (
	"context"
	"time"

	"fxmacro/internal/model"
)

// MarketData is the abstraction used by the application when fetching bars
// from a market data source. Implementations are responsible for translating
// their vendor's schema into the canonical one and for resource cleanup.
type MarketData interface {
	GetName() string
	FetchBars(ctx context.Context, symbol string, g model.Granularity, from, to time.Time) (*model.Series, error)
	Close() error
}

// MacroData fetches economic indicator series.
type MacroData interface {
	GetName() string
	FetchSeries(ctx context.Context, indicator string, from, to time.Time) (*model.MacroSeries, error)
	Close() error
}
