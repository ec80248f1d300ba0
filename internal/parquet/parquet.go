// Package parquet provides data structures and functions for exporting qmetrics
// reports and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/qmetrics/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRun represents a single report run with metadata.
// This struct maps to the qmetrics_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunUUID is the report identifier shown to users
	RunUUID string `parquet:"run_uuid,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// MetricsAnalyzed is the number of metrics that were not skipped
	MetricsAnalyzed int32 `parquet:"metrics_analyzed,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// MetricSummary represents the statistics of one metric for one version tag.
// This struct maps to the qmetrics_metric_summaries database table.
type MetricSummary struct {
	RunID       int64   `parquet:"run_id,snappy"`
	RunUUID     *string `parquet:"run_uuid,optional,snappy"`
	Metric      string  `parquet:"metric,snappy"`
	Tag         string  `parquet:"tag,snappy"`
	SampleCount int32   `parquet:"sample_count,snappy"`
	Median      float64 `parquet:"median,snappy"`
	Q1          float64 `parquet:"q1,snappy"`
	Q3          float64 `parquet:"q3,snappy"`
	Min         float64 `parquet:"min,snappy"`
	Max         float64 `parquet:"max,snappy"`
	Mean        float64 `parquet:"mean,snappy"`
	Std         float64 `parquet:"std,snappy"`
	Trend       string  `parquet:"trend,snappy"`
	Assessment  *string `parquet:"assessment,optional,snappy"`
}

// WriteRunsParquet writes a slice of ReportRun structs to a Parquet file.
func WriteRunsParquet(data []ReportRun, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteSummariesParquet writes a slice of MetricSummary structs to a Parquet file.
func WriteSummariesParquet(data []MetricSummary, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteSummaries streams MetricSummary rows to w.
func WriteSummaries(w io.Writer, data []MetricSummary) error {
	return write(w, data)
}

// writeFile creates outputPath and writes data into it.
func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return write(file, data)
}

// write encodes data with a schema derived from the struct tags of T.
func write[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// ConvertRunRecords converts schema.RunRecord to ReportRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []ReportRun {
	result := make([]ReportRun, len(records))
	for i, record := range records {
		result[i] = ReportRun{
			RunID:           record.RunID,
			RunUUID:         record.RunUUID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			MetricsAnalyzed: record.MetricsAnalyzed,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertSummaryRecords converts schema.SummaryRecord to MetricSummary for Parquet export.
func ConvertSummaryRecords(records []schema.SummaryRecord) []MetricSummary {
	result := make([]MetricSummary, len(records))
	for i, record := range records {
		result[i] = MetricSummary{
			RunID:       record.RunID,
			Metric:      record.Metric,
			Tag:         record.Tag,
			SampleCount: record.SampleCount,
			Median:      record.Median,
			Q1:          record.Q1,
			Q3:          record.Q3,
			Min:         record.Min,
			Max:         record.Max,
			Mean:        record.Mean,
			Std:         record.Std,
			Trend:       record.Trend,
			Assessment:  record.Assessment,
		}
	}
	return result
}

// ReportSummaries flattens a report into MetricSummary rows tagged with its run UUID.
func ReportSummaries(report schema.Report) []MetricSummary {
	rows := ConvertSummaryRecords(schema.SummaryRecords(0, report))
	runUUID := report.RunID
	for i := range rows {
		rows[i].RunUUID = &runUUID
	}
	return rows
}
