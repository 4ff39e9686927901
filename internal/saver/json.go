package saver

import (
	"encoding/json"
	"os"
)

// JSONSaver persists packets as an indented JSON array.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) SaveBars(rows []BarRow, path string) error {
	return writeJSON(rows, path)
}

func (JSONSaver) SaveObservations(rows []ObservationRow, path string) error {
	return writeJSON(rows, path)
}

func writeJSON(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
