package chart

import (
	"context"
	"fmt"

	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Renderer writes static box plots (png, svg or pdf) with gonum/plot.
type Renderer struct {
	dir    string
	format schema.ChartFormat
	style  schema.ChartStyle
}

var _ contract.ChartRenderer = &Renderer{} // Compile-time check

// NewRenderer returns a static renderer writing into dir.
func NewRenderer(dir string, format schema.ChartFormat, style schema.ChartStyle) *Renderer {
	return &Renderer{dir: dir, format: format, style: style}
}

// Render implements the ChartRenderer interface.
func (r *Renderer) Render(ctx context.Context, series schema.MetricSeries) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkSeries(series); err != nil {
		return "", err
	}

	p, err := r.buildPlot(series)
	if err != nil {
		return "", err
	}

	path, err := prepareOutput(r.dir, series.Metric, r.format)
	if err != nil {
		return "", err
	}
	l := layoutFor(series, r.style)
	if err := p.Save(vg.Length(l.WidthIn)*vg.Inch, vg.Length(l.HeightIn)*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save %s chart: %w", series.Metric, err)
	}
	return path, nil
}

// buildPlot lays out one box per tag in series order.
func (r *Renderer) buildPlot(series schema.MetricSeries) (*plot.Plot, error) {
	l := layoutFor(series, r.style)
	p := plot.New()
	p.Title.Text = l.Title
	p.X.Label.Text = l.XLabel
	p.Y.Label.Text = l.YLabel

	if l.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = nil
		p.Add(grid)
	}

	enhanced := r.style != schema.BasicStyle
	notched := !enhanced || !schema.IsDiscrete(series.Metric)
	boxWidth := vg.Points(40)
	if enhanced {
		boxWidth = vg.Points(60)
	}

	names := make([]string, len(series.Groups))
	for i, g := range series.Groups {
		names[i] = string(g.Tag)
		box, err := newBoxPlot(boxWidth, float64(i), g.Values)
		if err != nil {
			return nil, fmt.Errorf("box plot for %s in %s: %w", series.Metric, g.Tag, err)
		}
		if l.Palette {
			box.FillColor = plotutil.Color(i)
		}
		p.Add(box)
		if notched {
			p.Add(NewNotch(float64(i), g.Values, boxWidth))
		}
	}
	p.NominalX(names...)

	if enhanced {
		lo, hi, integer := yRange(series)
		p.Y.Min, p.Y.Max = lo, hi
		if integer {
			p.Y.Tick.Marker = integerTicks{Step: integerStep(floats.Max(series.Pooled()))}
		}
	}
	return p, nil
}

// newBoxPlot returns a gonum box drawn from interpolated quartiles, so the box
// matches the reported Q1, median and Q3. gonum's own quartiles are half-medians.
func newBoxPlot(width vg.Length, loc float64, values []float64) (*plotter.BoxPlot, error) {
	box, err := plotter.NewBoxPlot(width, loc, plotter.Values(values))
	if err != nil {
		return nil, err
	}
	stats := computeBox(values)
	box.Quartile1, box.Median, box.Quartile3 = stats.Q1, stats.Median, stats.Q3
	box.AdjLow, box.AdjHigh = stats.LowWhisker, stats.HighWhisker
	box.Outside = box.Outside[:0]
	for i, v := range box.Values {
		if stats.isOutlier(v) {
			box.Outside = append(box.Outside, i)
		}
	}
	return box, nil
}
