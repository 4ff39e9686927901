package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fxmacro/internal/model"
	"fxmacro/internal/saver"
)

func TestSaveBarsPacket(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	s := &model.Series{
		Symbol: "USDGBP",
		Vendor: "Polygon",
		Bars: []model.Bar{
			{Timestamp: time.Date(2024, 3, 12, 12, 20, 0, 0, time.UTC), Open: 0.782, High: 0.7824, Low: 0.7819, Close: 0.7821},
		},
	}
	from := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	require.NoError(t, SaveBarsPacket(cfg, saver.CSVSaver{}, s, from, to))

	path := filepath.Join(cfg.DataDir, "Polygon", "USDGBP", "USDGBP_2024-03-12_to_2024-03-13.csv")
	_, err := os.Stat(path)
	assert.NoError(t, err, "packet file should exist at %s", path)
}

func TestSaveMacroPacket(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	m := &model.MacroSeries{
		Indicator: "CPIAUCSL",
		Observations: []model.Observation{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 309.7},
		},
	}
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, SaveMacroPacket(cfg, saver.JSONSaver{}, m, from, to))

	path := filepath.Join(cfg.DataDir, "FRED", "CPIAUCSL", "CPIAUCSL_2023-01-01_to_2024-01-31.json")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSavePacketNoop(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	// nil saver and empty series are both quiet no-ops
	assert.NoError(t, SaveBarsPacket(cfg, nil, &model.Series{Symbol: "X", Vendor: "Yahoo"}, time.Now(), time.Now()))
	entries, err := os.ReadDir(cfg.DataDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
