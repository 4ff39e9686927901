package saver

import (
	"github.com/parquet-go/parquet-go"
)

// ParquetSaver persists packets as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) SaveBars(rows []BarRow, path string) error {
	return parquet.WriteFile(path, rows)
}

func (ParquetSaver) SaveObservations(rows []ObservationRow, path string) error {
	return parquet.WriteFile(path, rows)
}
