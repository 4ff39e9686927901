package model

import "time"

// Observation is one release of an economic indicator in the canonical macro
// schema. Date is the release's reference date, not the publish date.
// PeriodChange and YoYChange are nil where not enough prior observations
// exist in the requested window.
type Observation struct {
	Date         time.Time `json:"date"`
	Value        float64   `json:"value"`
	PeriodChange *float64  `json:"period_change,omitempty"`
	YoYChange    *float64  `json:"yoy_change,omitempty"`
}

// MacroSeries is one indicator's canonical observation table, ordered by
// reference date ascending.
type MacroSeries struct {
	Indicator    string
	Observations []Observation
}

// Len returns the number of observations. Safe on a nil series.
func (m *MacroSeries) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Observations)
}
