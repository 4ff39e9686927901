package polygon

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"fxmacro/internal/model"
)

// BarRaw is one raw aggregate row as Polygon returns it: epoch-ms timestamp,
// lowercase single-letter fields, with FlexibleInt64 for Volume and
// Transactions. VWAP, Transactions and the OTC flag are vendor extras dropped
// during normalization.
type BarRaw struct {
	Timestamp    int64         `json:"t"` // Unix timestamp in milliseconds
	Open         float64       `json:"o"`
	High         float64       `json:"h"`
	Low          float64       `json:"l"`
	Close        float64       `json:"c"`
	Volume       FlexibleInt64 `json:"v"`
	VWAP         float64       `json:"vw,omitempty"`
	Transactions FlexibleInt64 `json:"n,omitempty"`
	OTC          bool          `json:"otc,omitempty"`
}

// ToBar converts BarRaw to the canonical bar, parsing the epoch-ms timestamp
// and keeping only the canonical fields.
func (br BarRaw) ToBar() model.Bar {
	return model.Bar{
		Timestamp: time.UnixMilli(br.Timestamp).UTC(),
		Open:      br.Open,
		High:      br.High,
		Low:       br.Low,
		Close:     br.Close,
		Volume:    br.Volume.Int64(),
	}
}

// AggregatesResponse is the Polygon aggregates API response envelope.
type AggregatesResponse struct {
	Ticker       string   `json:"ticker"`
	QueryCount   int      `json:"queryCount"`
	ResultsCount int      `json:"resultsCount"`
	Adjusted     bool     `json:"adjusted"`
	Results      []BarRaw `json:"results"`
	Status       string   `json:"status"`
	RequestID    string   `json:"request_id"`
	Count        int      `json:"count"`
	NextURL      string   `json:"next_url,omitempty"`
}

// FlexibleInt64 parses int or float (scientific notation) to int64.
// Polygon emits forex volumes as floats.
type FlexibleInt64 int64

// UnmarshalJSON parses int, float or numeric string.
func (f *FlexibleInt64) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*f = FlexibleInt64(int64(val))
		return nil
	}

	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		*f = FlexibleInt64(int64(floatVal))
		return nil
	}

	var intVal int64
	if err := json.Unmarshal(data, &intVal); err == nil {
		*f = FlexibleInt64(intVal)
		return nil
	}

	return fmt.Errorf("cannot parse as int64: %s", string(data))
}

// Int64 returns the int64 value.
func (f FlexibleInt64) Int64() int64 {
	return int64(f)
}
