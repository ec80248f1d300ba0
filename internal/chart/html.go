package chart

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/schema"
)

// HTMLRenderer writes interactive box plots with go-echarts.
type HTMLRenderer struct {
	dir   string
	style schema.ChartStyle
}

var _ contract.ChartRenderer = &HTMLRenderer{} // Compile-time check

// NewHTMLRenderer returns an HTML renderer writing into dir.
func NewHTMLRenderer(dir string, style schema.ChartStyle) *HTMLRenderer {
	return &HTMLRenderer{dir: dir, style: style}
}

// Render implements the ChartRenderer interface.
func (r *HTMLRenderer) Render(ctx context.Context, series schema.MetricSeries) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkSeries(series); err != nil {
		return "", err
	}

	path, err := prepareOutput(r.dir, series.Metric, schema.HTMLChart)
	if err != nil {
		return "", err
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s chart: %w", series.Metric, err)
	}
	if err := writeAndClose(file, r.buildChart(series).Render); err != nil {
		return "", fmt.Errorf("render %s chart: %w", series.Metric, err)
	}
	return path, nil
}

// writeAndClose renders into wc and closes it, returning the render error first.
func writeAndClose(wc io.WriteCloser, render func(io.Writer) error) (err error) {
	defer func() {
		if closeErr := wc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return render(wc)
}

// buildChart lays out one box per tag with outliers overlaid as scatter points.
func (r *HTMLRenderer) buildChart(series schema.MetricSeries) *charts.BoxPlot {
	l := layoutFor(series, r.style)

	tags := make([]string, len(series.Groups))
	boxes := make([]opts.BoxPlotData, len(series.Groups))
	var outliers []opts.ScatterData
	for i, g := range series.Groups {
		tags[i] = string(g.Tag)
		b := computeBox(g.Values)
		boxes[i] = opts.BoxPlotData{
			Name:  string(g.Tag),
			Value: []float64{b.LowWhisker, b.Q1, b.Median, b.Q3, b.HighWhisker},
		}
		for _, v := range b.Outliers {
			outliers = append(outliers, opts.ScatterData{Value: []interface{}{string(g.Tag), v}})
		}
	}

	yAxis := opts.YAxis{Name: l.YLabel, NameLocation: "middle", NameGap: 50}
	if r.style != schema.BasicStyle {
		lo, hi, _ := yRange(series)
		yAxis.Min, yAxis.Max = lo, hi
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: l.Title,
			Width:     fmt.Sprintf("%.0fpx", l.WidthIn*96),
			Height:    fmt.Sprintf("%.0fpx", l.HeightIn*96),
		}),
		charts.WithTitleOpts(opts.Title{Title: l.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: l.XLabel, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(yAxis),
	)
	box.SetXAxis(tags).AddSeries(string(series.Metric), boxes)

	if len(outliers) > 0 {
		scatter := charts.NewScatter()
		scatter.SetXAxis(tags).AddSeries("outliers", outliers, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
		box.Overlap(scatter)
	}
	return box
}
