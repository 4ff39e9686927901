package saver

import (
	"time"

	"fxmacro/internal/model"
)

// BarRow is the flat DTO used for persisting bar packets (CSV/Parquet/JSON).
// Package saver does not depend on any provider — only on the canonical
// model it flattens.
type BarRow struct {
	Timestamp int64   `json:"t" parquet:"t"` // Unix timestamp in milliseconds
	Open      float64 `json:"o" parquet:"o"`
	High      float64 `json:"h" parquet:"h"`
	Low       float64 `json:"l" parquet:"l"`
	Close     float64 `json:"c" parquet:"c"`
	Volume    int64   `json:"v,omitempty" parquet:"v,optional"`
}

// BarRows flattens a canonical series into rows.
func BarRows(s *model.Series) []BarRow {
	rows := make([]BarRow, 0, s.Len())
	for _, b := range s.Bars {
		rows = append(rows, BarRow{
			Timestamp: b.Timestamp.UnixMilli(),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
		})
	}
	return rows
}

// ObservationRow is the flat DTO for persisting macro observation packets.
// Change fields stay pointers so a missing change is a null, not a zero.
type ObservationRow struct {
	Date         string   `json:"date" parquet:"date"`
	Value        float64  `json:"value" parquet:"value"`
	PeriodChange *float64 `json:"period_change,omitempty" parquet:"period_change,optional"`
	YoYChange    *float64 `json:"yoy_change,omitempty" parquet:"yoy_change,optional"`
}

// ObservationRows flattens a canonical macro series into rows.
func ObservationRows(m *model.MacroSeries) []ObservationRow {
	rows := make([]ObservationRow, 0, m.Len())
	for _, o := range m.Observations {
		rows = append(rows, ObservationRow{
			Date:         o.Date.Format(time.DateOnly),
			Value:        o.Value,
			PeriodChange: o.PeriodChange,
			YoYChange:    o.YoYChange,
		})
	}
	return rows
}
