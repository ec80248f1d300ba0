package history

import (
	"errors"
	"fmt"

	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/internal/parquet"
)

// ExecuteHistoryExport writes every stored run and summary to a pair of Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	return exportStore(Manager.GetHistoryStore(), outputFile)
}

// exportStore dumps store into outputFile.runs.parquet and outputFile.summaries.parquet.
func exportStore(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total summary records: %d\n", status.TableSizes[summariesTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	summaries, err := store.GetAllSummaries()
	if err != nil {
		return fmt.Errorf("failed to retrieve summaries: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	parquetSummaries := parquet.ConvertSummaryRecords(summaries)
	summariesFile := outputFile + ".summaries.parquet"
	if err := parquet.WriteSummariesParquet(parquetSummaries, summariesFile); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	fmt.Printf("Exported %d summary records to: %s\n", len(parquetSummaries), summariesFile)

	return nil
}
