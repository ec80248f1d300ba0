package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize("r1", []float64{4, 1, 3, 2})
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, 1.75, s.Q1, 1e-9)
	assert.InDelta(t, 2.5, s.Median, 1e-9)
	assert.InDelta(t, 3.25, s.Q3, 1e-9)
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 1.2909944, s.Std, 1e-6)

	single := Summarize("r1", []float64{3})
	assert.Equal(t, 1, single.Count)
	assert.Equal(t, 3.0, single.Median)
	assert.Equal(t, 3.0, single.Mean)
	assert.Equal(t, 0.0, single.Std)

	empty := Summarize("r1", nil)
	assert.Equal(t, 0, empty.Count)
}

// BenchmarkSummarize benchmarks the descriptive statistics of one tag.
func BenchmarkSummarize(b *testing.B) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64((i * 104729) % 500)
	}

	for b.Loop() {
		Summarize("r1", values)
	}
}
