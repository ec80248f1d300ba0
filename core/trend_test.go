package core

import (
	"testing"

	"github.com/huangsam/qmetrics/schema"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		medians  []float64
		expected schema.Trend
	}{
		{name: "empty", medians: nil, expected: schema.TrendStable},
		{name: "single tag", medians: []float64{4}, expected: schema.TrendStable},
		{name: "all equal", medians: []float64{2, 2, 2}, expected: schema.TrendStable},
		{name: "strictly increasing", medians: []float64{1.5, 3.5}, expected: schema.TrendIncreasing},
		{name: "strictly decreasing", medians: []float64{3.5, 1.5}, expected: schema.TrendDecreasing},
		{name: "non-decreasing with plateau", medians: []float64{1, 1, 2}, expected: schema.TrendIncreasing},
		{name: "non-increasing with plateau", medians: []float64{5, 3, 3}, expected: schema.TrendDecreasing},
		{name: "mixed", medians: []float64{1, 3, 2}, expected: schema.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyTrend(tt.medians))
		})
	}
}

// TestClassifyTrendFromValues mirrors groups A=[1,2] and B=[3,4].
func TestClassifyTrendFromValues(t *testing.T) {
	up := []schema.StatSummary{Summarize("A", []float64{1, 2}), Summarize("B", []float64{3, 4})}
	assert.Equal(t, schema.TrendIncreasing, ClassifyTrend(medians(up)))

	down := []schema.StatSummary{Summarize("A", []float64{3, 4}), Summarize("B", []float64{1, 2})}
	assert.Equal(t, schema.TrendDecreasing, ClassifyTrend(medians(down)))

	flat := []schema.StatSummary{Summarize("A", []float64{1, 2}), Summarize("B", []float64{1, 2})}
	assert.Equal(t, schema.TrendStable, ClassifyTrend(medians(flat)))
}
