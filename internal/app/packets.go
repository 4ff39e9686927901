package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fxmacro/internal/model"
	"fxmacro/internal/saver"
)

// SaveBarsPacket writes one fetched series under
// {dataDir}/{Vendor}/{Symbol}/{symbol}_{from}_to_{to}.{ext}.
func SaveBarsPacket(cfg *Config, ps saver.PacketSaver, s *model.Series, from, to time.Time) error {
	if ps == nil || s.Len() == 0 {
		return nil
	}
	dir := filepath.Join(cfg.SaveBaseDir(s.Vendor), s.Symbol)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create packet dir %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s_to_%s.%s", s.Symbol, from.Format(time.DateOnly), to.Format(time.DateOnly), ps.Extension())
	path := filepath.Join(dir, name)
	if err := ps.SaveBars(saver.BarRows(s), path); err != nil {
		return fmt.Errorf("write packet %s: %w", path, err)
	}
	slog.Info("saved bars packet", "symbol", s.Symbol, "path", path, "bars", s.Len())
	return nil
}

// SaveMacroPacket writes one fetched macro series under
// {dataDir}/FRED/{indicator}/{indicator}_{from}_to_{to}.{ext}.
func SaveMacroPacket(cfg *Config, ps saver.PacketSaver, m *model.MacroSeries, from, to time.Time) error {
	if ps == nil || m.Len() == 0 {
		return nil
	}
	dir := filepath.Join(cfg.SaveBaseDir("FRED"), m.Indicator)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create packet dir %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s_to_%s.%s", m.Indicator, from.Format(time.DateOnly), to.Format(time.DateOnly), ps.Extension())
	path := filepath.Join(dir, name)
	if err := ps.SaveObservations(saver.ObservationRows(m), path); err != nil {
		return fmt.Errorf("write packet %s: %w", path, err)
	}
	slog.Info("saved macro packet", "indicator", m.Indicator, "path", path, "observations", m.Len())
	return nil
}
