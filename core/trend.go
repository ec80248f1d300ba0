package core

import "github.com/huangsam/qmetrics/schema"

// ClassifyTrend labels the direction of per-tag medians taken in tag order.
// Constant or single-entry sequences are stable; monotonic ones are increasing
// or decreasing; anything else is stable.
func ClassifyTrend(medians []float64) schema.Trend {
	if len(medians) < 2 {
		return schema.TrendStable
	}

	nonDecreasing, nonIncreasing := true, true
	for i := 1; i < len(medians); i++ {
		if medians[i] < medians[i-1] {
			nonDecreasing = false
		}
		if medians[i] > medians[i-1] {
			nonIncreasing = false
		}
	}

	switch {
	case nonDecreasing && nonIncreasing:
		return schema.TrendStable
	case nonDecreasing:
		return schema.TrendIncreasing
	case nonIncreasing:
		return schema.TrendDecreasing
	default:
		return schema.TrendStable
	}
}
