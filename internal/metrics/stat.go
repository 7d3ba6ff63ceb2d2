// internal/metrics/stat.go
package metrics

import (
	"fmt"
	"math"
)

// NotAvailable is rendered for statistics over an empty set.
const NotAvailable = "N/A"

// RunningStat holds the necessary values for online calculation of mean, variance, and stddev.
type RunningStat struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	M2    float64 `json:"-"` // Sum of squares of differences from the current mean
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Add updates the statistic using Welford's online algorithm.
func (rs *RunningStat) Add(value float64) {
	rs.Count++
	if rs.Count == 1 {
		rs.Min = value
		rs.Max = value
	} else {
		if value < rs.Min {
			rs.Min = value
		}
		if value > rs.Max {
			rs.Max = value
		}
	}

	delta := value - rs.Mean
	rs.Mean += delta / float64(rs.Count)
	delta2 := value - rs.Mean
	rs.M2 += delta * delta2
}

// Valid reports whether at least one value was added.
func (rs RunningStat) Valid() bool { return rs.Count > 0 }

// StdDev is the population standard deviation, zero for fewer than two values.
func (rs RunningStat) StdDev() float64 {
	if rs.Count < 2 {
		return 0
	}
	return math.Sqrt(rs.M2 / float64(rs.Count))
}

// Format renders the mean with the given verb, or N/A when empty.
func (rs RunningStat) Format(verb string) string {
	if !rs.Valid() {
		return NotAvailable
	}
	return fmt.Sprintf(verb, rs.Mean)
}
