// Package chart renders per-metric box plots grouped by version tag.
package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/schema"
)

// New selects the renderer for the configured chart format.
func New(cfg *contract.Config) contract.ChartRenderer {
	if !cfg.Charts {
		return NoopRenderer{}
	}
	if cfg.ChartFormat == schema.HTMLChart {
		return NewHTMLRenderer(cfg.ChartDir, cfg.ChartStyle)
	}
	return NewRenderer(cfg.ChartDir, cfg.ChartFormat, cfg.ChartStyle)
}

// NoopRenderer renders nothing and reports no path.
type NoopRenderer struct{}

var _ contract.ChartRenderer = NoopRenderer{} // Compile-time check

// Render implements the ChartRenderer interface.
func (NoopRenderer) Render(context.Context, schema.MetricSeries) (string, error) {
	return "", nil
}

// layout holds the labels and sizing shared by every renderer for one style.
type layout struct {
	Title    string
	XLabel   string
	YLabel   string
	Grid     bool
	Palette  bool
	WidthIn  float64
	HeightIn float64
}

// layoutFor derives chart labels from the series and style.
func layoutFor(series schema.MetricSeries, style schema.ChartStyle) layout {
	if style == schema.BasicStyle {
		return layout{
			Title:    fmt.Sprintf("%s by Version", series.Metric),
			XLabel:   "Tag",
			WidthIn:  8,
			HeightIn: 5,
		}
	}
	return layout{
		Title:    fmt.Sprintf("Distribution of %s by Version", series.Description),
		XLabel:   "Software Version",
		YLabel:   series.Description,
		Grid:     true,
		Palette:  true,
		WidthIn:  10,
		HeightIn: 6,
	}
}

// yRange returns the enhanced-style axis bounds and whether ticks are integers.
func yRange(series schema.MetricSeries) (lo, hi float64, integer bool) {
	pooled := series.Pooled()
	if schema.IsDiscrete(series.Metric) {
		lo, hi = discreteRange(pooled)
		return lo, hi, true
	}
	lo, hi = continuousRange(pooled)
	return lo, hi, false
}

// prepareOutput creates the chart directory and returns the target file path.
func prepareOutput(dir string, metric schema.MetricID, format schema.ChartFormat) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart dir: %w", err)
	}
	return filepath.Join(dir, contract.ChartFileName(metric, format)), nil
}

// checkSeries rejects series that cannot be drawn.
func checkSeries(series schema.MetricSeries) error {
	if len(series.Groups) == 0 {
		return fmt.Errorf("no values to chart for %s", series.Metric)
	}
	for _, g := range series.Groups {
		if len(g.Values) == 0 {
			return fmt.Errorf("no values to chart for %s in %s", series.Metric, g.Tag)
		}
	}
	return nil
}
