package app

import (
	"fmt"
	"strings"

	"fxmacro/internal/provider"
	"fxmacro/internal/provider/fred"
	"fxmacro/internal/provider/polygon"
	"fxmacro/internal/provider/yahoo"
)

// CreateMarketProvider creates a MarketData implementation by name. Polygon
// requires a credential; Yahoo does not.
func CreateMarketProvider(cfg *Config, name string) (provider.MarketData, error) {
	switch strings.ToLower(name) {
	case "yahoo":
		return yahoo.NewClient(), nil
	case "polygon":
		if cfg.PolygonAPIKey == "" {
			return nil, fmt.Errorf("POLYGON_API_KEY not set")
		}
		return polygon.NewClient(cfg.PolygonAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported market provider: %s. Options: yahoo, polygon", name)
	}
}

// CreateMacroProvider creates the FRED-backed MacroData provider with the
// configured indicator YoY mapping.
func CreateMacroProvider(cfg *Config) (provider.MacroData, error) {
	if cfg.FredAPIKey == "" {
		return nil, fmt.Errorf("FRED_API_KEY not set")
	}
	return fred.NewClient(cfg.FredAPIKey, cfg.YoYIndicators), nil
}
