package parquet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/qmetrics/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(ReportRun))
	require.NotNil(t, s)

	for _, colName := range []string{"run_id", "run_uuid", "start_time", "end_time", "run_duration_ms", "metrics_analyzed", "config_params"} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestMetricSummaryStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(MetricSummary))
	require.NotNil(t, s)

	for _, colName := range []string{"run_id", "run_uuid", "metric", "tag", "sample_count", "median", "q1", "q3", "min", "max", "mean", "std", "trend", "assessment"} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)
	duration := int32(2000)
	params := `{"scope":"class"}`
	data := []ReportRun{
		{RunID: 1, RunUUID: "a", StartTime: start, EndTime: &end, RunDurationMs: &duration, MetricsAnalyzed: 7, ConfigParams: &params},
		{RunID: 2, RunUUID: "b", StartTime: start.Add(time.Hour)},
	}
	require.NoError(t, WriteRunsParquet(data, outputPath))

	readData := readAll[ReportRun](t, outputPath)
	require.Len(t, readData, 2)

	assert.Equal(t, int64(1), readData[0].RunID)
	assert.Equal(t, "a", readData[0].RunUUID)
	assert.Equal(t, int32(7), readData[0].MetricsAnalyzed)
	require.NotNil(t, readData[0].EndTime)
	assert.WithinDuration(t, end, *readData[0].EndTime, time.Nanosecond)
	require.NotNil(t, readData[0].ConfigParams)
	assert.Equal(t, params, *readData[0].ConfigParams)

	assert.Nil(t, readData[1].EndTime, "EndTime should be nil")
	assert.Nil(t, readData[1].RunDurationMs, "RunDurationMs should be nil")
	assert.Nil(t, readData[1].ConfigParams, "ConfigParams should be nil")
}

func TestReportSummaries(t *testing.T) {
	report := schema.Report{
		RunID: "run-123",
		Sections: []schema.MetricSection{
			{
				Metric:    schema.PercentLackOfCohesion,
				Summaries: []schema.StatSummary{{Tag: "r1", Count: 3, Median: 60}, {Tag: "r2", Count: 2, Median: 85}},
				Trend:     schema.TrendIncreasing,
				Assessments: []schema.Assessment{
					{Tag: "r1", Median: 60, Band: schema.Band{Label: "Moderate (50-80%)"}},
					{Tag: "r2", Median: 85, Band: schema.Band{Label: "Poor (>80%)"}},
				},
			},
			{Metric: schema.CountDeclMethod, Skipped: true, SkipReason: "not found in data"},
		},
	}

	rows := ReportSummaries(report)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].RunUUID)
	assert.Equal(t, "run-123", *rows[0].RunUUID)
	assert.Equal(t, "PercentLackOfCohesion", rows[0].Metric)
	assert.Equal(t, int32(3), rows[0].SampleCount)
	assert.Equal(t, "increasing", rows[1].Trend)
	require.NotNil(t, rows[1].Assessment)
	assert.Equal(t, "Poor (>80%)", *rows[1].Assessment)

	var buf bytes.Buffer
	require.NoError(t, WriteSummaries(&buf, rows))

	reader := parquet.NewGenericReader[MetricSummary](bytes.NewReader(buf.Bytes()))
	defer func() { _ = reader.Close() }()
	assert.Equal(t, int64(2), reader.NumRows())
}

func TestConvertSummaryRecords(t *testing.T) {
	label := "Low (<20)"
	records := []schema.SummaryRecord{
		{RunID: 4, Metric: "SumCyclomatic", Tag: "r1", SampleCount: 10, Median: 4, Q1: 2, Q3: 8, Min: 1, Max: 30, Mean: 6.2, Std: 5.1, Trend: "stable", Assessment: &label},
	}
	rows := ConvertSummaryRecords(records)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(4), rows[0].RunID)
	assert.Nil(t, rows[0].RunUUID)
	assert.Equal(t, 30.0, rows[0].Max)
	assert.Equal(t, &label, rows[0].Assessment)

	outputPath := filepath.Join(t.TempDir(), "summaries.parquet")
	require.NoError(t, WriteSummariesParquet(rows, outputPath))
	readData := readAll[MetricSummary](t, outputPath)
	require.Len(t, readData, 1)
	assert.InDelta(t, 6.2, readData[0].Mean, 1e-9)
}

func TestWriteRunsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteRunsParquet([]ReportRun{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain parquet metadata")
}

// readAll reads every row of a parquet file.
func readAll[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return rows[:n]
}
