package app

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration from the environment. Vendor
// credentials are never hard-coded; they come in here and are handed to the
// clients per construction.
type Config struct {
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"` // debug | info | warn | error
	DataDir        string `envconfig:"DATA_DIR" default:"data"`
	SaveFormat     string `envconfig:"SAVE_FORMAT" default:"csv"` // csv | parquet | json
	MarketProvider string `envconfig:"MARKET_PROVIDER" default:"yahoo"`
	PolygonAPIKey  string `envconfig:"POLYGON_API_KEY"`
	FredAPIKey     string `envconfig:"FRED_API_KEY"`

	// YoYIndicators maps an indicator code to the lag (in periods) used for
	// its year-over-year change. Indicators absent here get no YoY column.
	YoYIndicators map[string]int `envconfig:"YOY_INDICATORS" default:"CPIAUCSL:12"`
}

// LoadConfig reads config from the environment, loading a .env file first
// when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}

// SaveBaseDir returns the packet directory for one vendor, e.g. data/Polygon.
func (c *Config) SaveBaseDir(vendor string) string {
	return filepath.Join(c.DataDir, vendor)
}
