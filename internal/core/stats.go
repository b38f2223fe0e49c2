package core

import (
	"math"
	"sort"
)

// ColumnStats summarizes one numeric column for the post-conversion
// preview: count of numeric cells plus the usual describe() quantities.
type ColumnStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Describe computes per-column summary statistics over the numeric cells
// of every column. Columns with no numeric cells are skipped.
func Describe(ds *Dataset) []ColumnStats {
	var out []ColumnStats
	for _, c := range ds.Columns {
		var values []float64
		for _, p := range c.LooseFloats() {
			if p != nil {
				values = append(values, *p)
			}
		}
		if len(values) == 0 {
			continue
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		out = append(out, ColumnStats{
			Column: c.Name,
			Count:  len(values),
			Mean:   mean(values),
			Std:    stddev(values),
			Min:    sorted[0],
			P25:    quantile(sorted, 0.25),
			P50:    quantile(sorted, 0.50),
			P75:    quantile(sorted, 0.75),
			Max:    sorted[len(sorted)-1],
		})
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample standard deviation. Zero for a single value.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// quantile interpolates linearly between closest ranks. Input must be
// sorted and non-empty.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
