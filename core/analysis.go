package core

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/schema"
)

// Skip reasons recorded on skipped sections.
const (
	skipNotFound = "not found in data"
	skipNoValues = "no values"
)

// AnalyzeMetrics runs the per-metric pipeline over the scoped rows in metric order.
// Missing metrics are skipped and chart failures are recorded on the section; neither
// stops the loop. A nil renderer disables charts.
func AnalyzeMetrics(ctx context.Context, d schema.Dataset, metrics []schema.MetricID, tags []schema.VersionTag, renderer contract.ChartRenderer) ([]schema.MetricSection, error) {
	sections := make([]schema.MetricSection, 0, len(metrics))
	for _, metric := range metrics {
		if err := ctx.Err(); err != nil {
			return sections, err
		}
		section := analyzeMetric(ctx, d, metric, tags, renderer)
		if section.Skipped {
			fmt.Fprintf(os.Stderr, "⏭️  Skipping %s: %s\n", metric, section.SkipReason)
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// analyzeMetric computes the summary, trend, assessment and chart of one metric.
func analyzeMetric(ctx context.Context, d schema.Dataset, metric schema.MetricID, tags []schema.VersionTag, renderer contract.ChartRenderer) schema.MetricSection {
	section := schema.MetricSection{
		Metric:      metric,
		Description: schema.Describe(metric),
	}
	if !d.HasColumn(string(metric)) {
		section.Skipped = true
		section.SkipReason = skipNotFound
		return section
	}

	series, dropped := BuildSeries(d, metric, tags)
	section.Dropped = dropped
	if len(series.Groups) == 0 {
		section.Skipped = true
		section.SkipReason = skipNoValues
		return section
	}

	section.Summaries = SummarizeSeries(series)
	section.Trend = ClassifyTrend(medians(section.Summaries))
	if table, ok := schema.Thresholds[metric]; ok {
		section.AssessmentTitle = table.Title
		section.AssessmentUnit = table.Unit
		section.Assessments = Assess(table, section.Summaries)
	}

	if renderer == nil {
		return section
	}
	path, err := renderer.Render(ctx, series)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Chart for %s failed", metric), err)
		section.ChartError = err.Error()
		return section
	}
	section.ChartPath = path
	return section
}

// BuildSeries groups the numeric values of a metric by tag in the given order.
// Rows with a missing or non-numeric value are dropped and counted. Tags without
// values are left out; rows of unlisted tags are appended after them in first-seen order.
func BuildSeries(d schema.Dataset, metric schema.MetricID, tags []schema.VersionTag) (schema.MetricSeries, int) {
	order := make([]schema.VersionTag, 0, len(tags))
	byTag := make(map[schema.VersionTag][]float64, len(tags))
	known := make(map[schema.VersionTag]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := known[t]; !dup {
			known[t] = struct{}{}
			order = append(order, t)
		}
	}

	dropped := 0
	for _, row := range d.Rows {
		v, ok := row.Value(metric)
		if !ok {
			dropped++
			continue
		}
		if _, ok := known[row.Tag]; !ok {
			known[row.Tag] = struct{}{}
			order = append(order, row.Tag)
		}
		byTag[row.Tag] = append(byTag[row.Tag], v)
	}

	series := schema.MetricSeries{Metric: metric, Description: schema.Describe(metric)}
	for _, t := range order {
		if values := byTag[t]; len(values) > 0 {
			series.Groups = append(series.Groups, schema.TagValues{Tag: t, Values: values})
		}
	}
	return series, dropped
}
