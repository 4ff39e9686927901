package saver

import "strings"

// PacketSaver is the abstraction for persisting one fetched packet (a bar
// series or a macro series). High-level code injects the implementation;
// providers only depend on this interface.
type PacketSaver interface {
	SaveBars(rows []BarRow, path string) error
	SaveObservations(rows []ObservationRow, path string) error
	Extension() string
}

// NewPacketSaver creates an implementation by format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewPacketSaver(format string) PacketSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
