// Package schema has configs, models and global variables for all parts of qmetrics.
package schema

import (
	"slices"
	"strconv"
)

// VersionSource pairs a version tag with the CSV file holding its metrics.
type VersionSource struct {
	Tag  VersionTag `json:"tag"`
	Path string     `json:"path"`
}

// MetricRow is one analyzed code unit (class or method) from a single input file.
// Cells holds raw values keyed by column name; absent keys are missing values.
type MetricRow struct {
	Kind     Kind
	Tag      VersionTag
	UniqueID int
	Cells    map[string]string
}

// Dataset is the combined set of rows from all version files.
// Columns is the union of file headers in first-seen order.
type Dataset struct {
	Columns []string
	Rows    []MetricRow
}

// LoadResult reports what the loader read and how much deduplication removed.
type LoadResult struct {
	Dataset           Dataset
	RowsPerTag        map[VersionTag]int
	CombinedRows      int // before deduplication
	DuplicatesRemoved int
}

// HasColumn reports whether the dataset schema has the named column.
func (d Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// Cell returns the raw value of a column and whether it is present.
// Tag and unique_id resolve to the values assigned at load time.
func (r MetricRow) Cell(column string) (string, bool) {
	switch column {
	case TagColumn:
		return string(r.Tag), true
	case UniqueIDColumn:
		return strconv.Itoa(r.UniqueID), true
	}
	v, ok := r.Cells[column]
	if !ok || IsMissing(v) {
		return "", false
	}
	return v, true
}

// Value parses a numeric cell. Missing and non-numeric cells report false.
func (r MetricRow) Value(metric MetricID) (float64, bool) {
	raw, ok := r.Cell(string(metric))
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TagValues holds the cleaned values of one metric for one version tag.
type TagValues struct {
	Tag    VersionTag `json:"tag"`
	Values []float64  `json:"values"`
}

// MetricSeries is the cleaned, single-metric data handed to chart renderers.
type MetricSeries struct {
	Metric      MetricID    `json:"metric"`
	Description string      `json:"description"`
	Groups      []TagValues `json:"groups"`
}

// Pooled returns every value of the series across all tags.
func (s MetricSeries) Pooled() []float64 {
	var out []float64
	for _, g := range s.Groups {
		out = append(out, g.Values...)
	}
	return out
}

// StatSummary is the descriptive summary of one metric for one tag.
type StatSummary struct {
	Tag    VersionTag `json:"tag"`
	Count  int        `json:"count"`
	Median float64    `json:"median"`
	Q1     float64    `json:"q1"`
	Q3     float64    `json:"q3"`
	Min    float64    `json:"min"`
	Max    float64    `json:"max"`
	Mean   float64    `json:"mean"`
	Std    float64    `json:"std"`
}

// Assessment is the threshold band of one tag's median.
type Assessment struct {
	Tag    VersionTag `json:"tag"`
	Median float64    `json:"median"`
	Band   Band       `json:"band"`
}
