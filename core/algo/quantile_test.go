package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQuantile tests linear interpolation between closest ranks.
func TestQuantile(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []float64
		p        float64
		expected float64
	}{
		{name: "single value", sorted: []float64{7}, p: 0.25, expected: 7},
		{name: "median of even", sorted: []float64{1, 2, 3, 4}, p: 0.5, expected: 2.5},
		{name: "q1 of even", sorted: []float64{1, 2, 3, 4}, p: 0.25, expected: 1.75},
		{name: "q3 of even", sorted: []float64{1, 2, 3, 4}, p: 0.75, expected: 3.25},
		{name: "median of odd", sorted: []float64{1, 5, 9}, p: 0.5, expected: 5},
		{name: "minimum", sorted: []float64{1, 5, 9}, p: 0, expected: 1},
		{name: "maximum", sorted: []float64{1, 5, 9}, p: 1, expected: 9},
		{name: "q1 of five", sorted: []float64{1, 2, 3, 4, 100}, p: 0.25, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Quantile(tt.sorted, tt.p), 1e-9)
		})
	}

	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestQuartilesDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, median, _ := Quartiles(values)
	assert.Equal(t, 2.0, median)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

// BenchmarkQuartiles benchmarks quartile extraction on a mid-sized sample.
func BenchmarkQuartiles(b *testing.B) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64((i * 7919) % 1000)
	}

	for b.Loop() {
		Quartiles(values)
	}
}
