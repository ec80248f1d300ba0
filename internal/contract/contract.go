// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/qmetrics/schema"
)

// ChartRenderer draws one chart for a cleaned metric series.
// It returns the path of the written file.
type ChartRenderer interface {
	Render(ctx context.Context, series schema.MetricSeries) (string, error)
}

// HistoryManager defines the interface for managing the run history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking report runs and their summaries.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(startTime time.Time, runUUID string, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, metricsAnalyzed int) error

	// RecordSummary stores the statistics of one metric for one tag
	RecordSummary(record schema.SummaryRecord) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every stored run ordered by ID
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllSummaries returns every stored summary ordered by run, metric and tag
	GetAllSummaries() ([]schema.SummaryRecord, error)

	// Close closes the underlying connection
	Close() error
}
