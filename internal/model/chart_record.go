package model

import "math"

// ChartRecord is one aggregated category fed to the chart renderers. It is never persisted.
type ChartRecord struct {
	ID    string  `json:"_id" yaml:"_id" doc:"Category key, also used as display label"`
	Count float64 `json:"count" yaml:"count" doc:"Aggregated value for the category"`
}

// Valid reports whether Count is a finite number.
func (r ChartRecord) Valid() bool {
	return !math.IsNaN(r.Count) && !math.IsInf(r.Count, 0)
}
