package core

import (
	"github.com/huangsam/qmetrics/core/algo"
	"github.com/huangsam/qmetrics/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the descriptive summary of one tag's values.
// The standard deviation is the sample deviation and is zero below two values.
func Summarize(tag schema.VersionTag, values []float64) schema.StatSummary {
	s := schema.StatSummary{Tag: tag, Count: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Q1, s.Median, s.Q3 = algo.Quartiles(values)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	if len(values) < 2 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	return s
}

// SummarizeSeries summarizes every tag group of a series in order.
func SummarizeSeries(series schema.MetricSeries) []schema.StatSummary {
	out := make([]schema.StatSummary, 0, len(series.Groups))
	for _, g := range series.Groups {
		out = append(out, Summarize(g.Tag, g.Values))
	}
	return out
}

// medians extracts the median of each summary in order.
func medians(summaries []schema.StatSummary) []float64 {
	out := make([]float64, len(summaries))
	for i, s := range summaries {
		out[i] = s.Median
	}
	return out
}
