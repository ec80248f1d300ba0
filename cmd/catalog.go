package cmd

import (
	"github.com/huangsam/qmetrics/core"
	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/spf13/cobra"
)

// catalogCmd displays the descriptions of all known metrics.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Display the description of every known metric",
	Long: `Show the identifier and human-readable description of each metric qmetrics understands.

No data files are read.

Examples:
  # Show the catalog
  qmetrics catalog

  # Export the catalog as CSV
  qmetrics catalog --output csv --output-file catalog.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCatalog(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot display catalog", err)
		}
	},
}
