package chart

import (
	"math"
	"slices"
	"strconv"

	"github.com/huangsam/qmetrics/core/algo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
)

const (
	whiskerFactor = 1.5
	notchFactor   = 1.57
	maxIntTicks   = 20
)

// boxStats holds the five-number summary drawn for one box.
type boxStats struct {
	Q1, Median, Q3 float64
	LowWhisker     float64
	HighWhisker    float64
	Outliers       []float64
	LowFence       float64
	HighFence      float64
}

// isOutlier reports whether v lies beyond the whisker fences.
func (b boxStats) isOutlier(v float64) bool {
	return v < b.LowFence || v > b.HighFence
}

// computeBox returns quartiles, 1.5 IQR whiskers clamped to the data and the points outside them.
func computeBox(values []float64) boxStats {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	q1, med, q3 := algo.Quantile(sorted, 0.25), algo.Quantile(sorted, 0.5), algo.Quantile(sorted, 0.75)
	iqr := q3 - q1
	b := boxStats{
		Q1: q1, Median: med, Q3: q3,
		LowWhisker: q1, HighWhisker: q3,
		LowFence: q1 - whiskerFactor*iqr, HighFence: q3 + whiskerFactor*iqr,
	}
	for _, v := range sorted {
		if b.isOutlier(v) {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		b.LowWhisker = math.Min(b.LowWhisker, v)
		b.HighWhisker = math.Max(b.HighWhisker, v)
	}
	return b
}

// notchBounds returns the median confidence interval median ± 1.57·IQR/√n.
func notchBounds(values []float64) (lo, hi float64) {
	q1, med, q3 := algo.Quartiles(values)
	half := notchFactor * (q3 - q1) / math.Sqrt(float64(len(values)))
	return med - half, med + half
}

// discreteRange bounds integer-valued metrics to [-0.5, max+0.5].
func discreteRange(pooled []float64) (lo, hi float64) {
	return widen(-0.5, floats.Max(pooled)+0.5)
}

// continuousRange clips the axis one IQR beyond the outlier fences, never past the data.
func continuousRange(pooled []float64) (lo, hi float64) {
	q1, _, q3 := algo.Quartiles(pooled)
	iqr := q3 - q1
	lo = math.Max(floats.Min(pooled), q1-whiskerFactor*iqr-iqr)
	hi = math.Min(floats.Max(pooled), q3+whiskerFactor*iqr+iqr)
	return widen(lo, hi)
}

// widen pads a degenerate range by half a unit on each side.
func widen(lo, hi float64) (float64, float64) {
	if hi <= lo {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// integerStep spaces integer ticks so at most maxIntTicks are drawn.
func integerStep(max float64) float64 {
	if max <= maxIntTicks {
		return 1
	}
	return math.Ceil(max / maxIntTicks)
}

// integerTicks places labeled ticks on multiples of Step.
type integerTicks struct {
	Step float64
}

var _ plot.Ticker = integerTicks{} // Compile-time check

// Ticks implements the plot.Ticker interface.
func (t integerTicks) Ticks(min, max float64) []plot.Tick {
	step := t.Step
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for v := math.Ceil(min/step) * step; v <= max; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64)})
	}
	return ticks
}
