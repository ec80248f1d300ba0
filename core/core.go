// Package core has core logic for loading, classifying and analyzing quality metrics.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/qmetrics/internal/chart"
	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/internal/outwriter"
	"github.com/huangsam/qmetrics/schema"
)

// ExecuteReport runs the full pipeline: load, classify, analyze, chart and write.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	start := time.Now()
	report, err := BuildReport(ctx, cfg, chart.New(cfg))
	if err != nil {
		return err
	}
	recordHistory(cfg, mgr, report, start)
	return outwriter.WriteReport(report, cfg, time.Since(start))
}

// ExecuteCatalog prints the metric catalog.
func ExecuteCatalog(_ context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return outwriter.WriteCatalog(schema.Catalog, cfg)
}

// BuildReport loads the configured versions and analyzes the scoped rows.
// Load failures abort the report.
func BuildReport(ctx context.Context, cfg *contract.Config, renderer contract.ChartRenderer) (schema.Report, error) {
	loaded, err := LoadDataset(cfg.Versions)
	if err != nil {
		return schema.Report{}, fmt.Errorf("failed to load dataset: %w", err)
	}

	scoped := ClassifyRows(loaded.Dataset).Scoped(cfg.Scope)
	sections, err := AnalyzeMetrics(ctx, scoped, cfg.Metrics, cfg.Tags(), renderer)
	if err != nil {
		return schema.Report{}, err
	}

	return schema.Report{
		RunID:             uuid.NewString(),
		GeneratedAt:       time.Now().UTC(),
		Scope:             cfg.Scope,
		Versions:          cfg.Versions,
		RowsPerTag:        loaded.RowsPerTag,
		CombinedRows:      loaded.CombinedRows,
		DuplicatesRemoved: loaded.DuplicatesRemoved,
		ScopedRows:        len(scoped.Rows),
		Catalog:           schema.Catalog,
		Sections:          sections,
	}, nil
}

// recordHistory stores the run and its summaries when a history store is configured.
// Failures are warnings only.
func recordHistory(cfg *contract.Config, mgr contract.HistoryManager, report schema.Report, start time.Time) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	runID, err := store.BeginRun(start, report.RunID, cfg.Params())
	if err != nil {
		contract.LogWarn("Run history initialization failed", err)
		return
	}
	if runID <= 0 {
		return
	}

	for _, rec := range schema.SummaryRecords(runID, report) {
		if err := store.RecordSummary(rec); err != nil {
			contract.LogWarn(fmt.Sprintf("Failed to record %s summary for %s", rec.Metric, rec.Tag), err)
		}
	}
	if err := store.EndRun(runID, time.Now(), len(report.Analyzed())); err != nil {
		contract.LogWarn("Failed to finalize run history", err)
	}
}
