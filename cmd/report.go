package cmd

import (
	"github.com/huangsam/qmetrics/core"
	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd runs the full metrics pipeline.
var reportCmd = &cobra.Command{
	Use:   "report [data-dir]",
	Short: "Summarize and chart quality metrics for every configured version.",
	Long: `Combine the per-version metric exports found in the data dir and report on each metric.

For every configured metric, in order:
- Descriptive statistics per version (count, quartiles, min, max, mean, std)
- The median trend across versions (increasing, decreasing or stable)
- A quality assessment for cyclomatic complexity, cohesion and inheritance depth
- A box plot per version, written to the chart dir

Metrics missing from the data are skipped with a notice.

Examples:
  # Report on the default three releases in the current directory
  qmetrics report

  # Compare two exports by method rows only
  qmetrics report ./data --versions v1=v1.csv,v2=v2.csv --scope method

  # Interactive charts and a JSON report
  qmetrics report ./data --chart-format html --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
