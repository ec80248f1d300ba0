// Package algo has the numeric helpers shared by analysis and chart rendering.
package algo

import (
	"math"
	"slices"
)

// Quantile computes the p-th quantile of sorted values using linear interpolation
// between closest ranks: position (n-1)*p, interpolated between its neighbours.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Quartiles returns Q1, the median and Q3 of unsorted values.
func Quartiles(values []float64) (q1, median, q3 float64) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return Quantile(sorted, 0.25), Quantile(sorted, 0.5), Quantile(sorted, 0.75)
}
