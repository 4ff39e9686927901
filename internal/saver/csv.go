package saver

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVSaver persists packets as CSV (bars header: t,o,h,l,c,v).
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) SaveBars(rows []BarRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t", "o", "h", "l", "c", "v"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			strconv.FormatInt(r.Timestamp, 10),
			floatStr(r.Open),
			floatStr(r.High),
			floatStr(r.Low),
			floatStr(r.Close),
			strconv.FormatInt(r.Volume, 10),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (CSVSaver) SaveObservations(rows []ObservationRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "value", "period_change", "yoy_change"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			r.Date,
			floatStr(r.Value),
			optFloatStr(r.PeriodChange),
			optFloatStr(r.YoYChange),
		}); err != nil {
			return err
		}
	}
	return nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func optFloatStr(f *float64) string {
	if f == nil {
		return ""
	}
	return floatStr(*f)
}
