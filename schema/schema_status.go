package schema

import "time"

// HistoryStatus represents the status of the run history store.
type HistoryStatus struct {
	Backend         string           `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalRuns       int              `json:"total_runs"`
	LastRunID       int64            `json:"last_run_id"`
	LastRunTime     time.Time        `json:"last_run_time"`
	OldestRunTime   time.Time        `json:"oldest_run_time"`
	MetricsAnalyzed int              `json:"metrics_analyzed"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the qmetrics_runs table.
type RunRecord struct {
	RunID           int64
	RunUUID         string
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	MetricsAnalyzed int32
	ConfigParams    *string
}

// SummaryRecord represents a row from the qmetrics_metric_summaries table.
type SummaryRecord struct {
	RunID       int64
	Metric      string
	Tag         string
	SampleCount int32
	Median      float64
	Q1          float64
	Q3          float64
	Min         float64
	Max         float64
	Mean        float64
	Std         float64
	Trend       string
	Assessment  *string
}
