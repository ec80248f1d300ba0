package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/qmetrics/schema"
)

// catalogIDWidth is the padded width of metric identifiers in text output.
const catalogIDWidth = 20

// writeCatalogText prints one "identifier: description" line per metric in catalog order.
// Descriptions are printed in full regardless of terminal width.
func writeCatalogText(w io.Writer, catalog []schema.MetricDescriptor) error {
	if _, err := fmt.Fprintln(w, "📚 Metric Descriptions:"); err != nil {
		return err
	}
	for _, m := range catalog {
		if _, err := fmt.Fprintf(w, "%-*s: %s\n", catalogIDWidth, m.ID, m.Description); err != nil {
			return err
		}
	}
	return nil
}

// writeCatalogCSV writes the catalog as metric,description rows.
func writeCatalogCSV(w io.Writer, catalog []schema.MetricDescriptor) error {
	return writeCSVWithHeader(w, []string{"metric", "description"}, func(cw *csv.Writer) error {
		for _, m := range catalog {
			if err := cw.Write([]string{string(m.ID), m.Description}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
