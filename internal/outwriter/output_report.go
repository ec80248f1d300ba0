package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/qmetrics/internal/contract"
	"github.com/huangsam/qmetrics/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeReportText renders the catalog followed by one block per configured metric.
func writeReportText(w io.Writer, report schema.Report, cfg *contract.Config, duration time.Duration) error {
	if err := writeReportHeader(w, report); err != nil {
		return err
	}
	if err := writeCatalogText(w, report.Catalog); err != nil {
		return err
	}

	fmtFloat := floatFormatter(cfg.Precision)
	divider := strings.Repeat("=", getDividerWidth(cfg))
	for _, s := range report.Sections {
		if _, err := fmt.Fprintf(w, "\n%s\n%s: %s\n%s\n", divider, s.Metric, s.Description, divider); err != nil {
			return err
		}
		if s.Skipped {
			if _, err := fmt.Fprintf(w, "⏭️  Skipped: %s\n", s.SkipReason); err != nil {
				return err
			}
			continue
		}
		if err := writeSectionText(w, s, cfg, fmtFloat); err != nil {
			return err
		}
	}

	analyzed := len(report.Analyzed())
	if _, err := fmt.Fprintf(w, "\nAnalyzed %d of %d metrics in %v. Run ID: %s\n", analyzed, len(report.Sections), duration, report.RunID); err != nil {
		return err
	}
	return nil
}

// writeReportHeader prints per-version row counts and the deduplication outcome.
func writeReportHeader(w io.Writer, report schema.Report) error {
	if _, err := fmt.Fprintln(w, "📊 Software Quality Metrics Report"); err != nil {
		return err
	}
	parts := make([]string, 0, len(report.Versions))
	for _, v := range report.Versions {
		parts = append(parts, fmt.Sprintf("%s (%d rows)", v.Tag, report.RowsPerTag[v.Tag]))
	}
	if _, err := fmt.Fprintf(w, "Versions: %s\n", strings.Join(parts, ", ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Combined rows: %d (duplicates removed: %d), %s rows analyzed: %d\n\n",
		report.CombinedRows, report.DuplicatesRemoved, report.Scope, report.ScopedRows); err != nil {
		return err
	}
	return nil
}

// writeSectionText prints the statistics table, trend, assessment and chart of one metric.
func writeSectionText(w io.Writer, s schema.MetricSection, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Tag", "Count", "Median", "Q1", "Q3", "Min", "Max", "Mean", "Std"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, sum := range s.Summaries {
		data = append(data, []string{
			string(sum.Tag),
			strconv.Itoa(sum.Count),
			fmtFloat(sum.Median),
			fmtFloat(sum.Q1),
			fmtFloat(sum.Q3),
			fmtFloat(sum.Min),
			fmtFloat(sum.Max),
			fmtFloat(sum.Mean),
			fmtFloat(sum.Std),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if s.Dropped > 0 {
		if _, err := fmt.Fprintf(w, "Rows without a value: %d\n", s.Dropped); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Trend: %s\n", contract.GetTrendLabel(s.Trend, cfg.UseColors)); err != nil {
		return err
	}

	if len(s.Assessments) > 0 {
		if _, err := fmt.Fprintf(w, "%s:\n", s.AssessmentTitle); err != nil {
			return err
		}
		for _, a := range s.Assessments {
			label := a.Band.Label
			if cfg.UseColors {
				label = contract.GetColorLabel(a.Band)
			}
			if _, err := fmt.Fprintf(w, "  %s: %s%s → %s\n", a.Tag, fmtFloat(a.Median), s.AssessmentUnit, label); err != nil {
				return err
			}
		}
	}

	switch {
	case s.ChartError != "":
		if _, err := fmt.Fprintf(w, "Chart failed: %s\n", s.ChartError); err != nil {
			return err
		}
	case s.ChartPath != "":
		if _, err := fmt.Fprintf(w, "Chart: %s\n", s.ChartPath); err != nil {
			return err
		}
	}
	return nil
}

// writeReportCSV writes one row per metric and tag plus one row per skipped metric.
func writeReportCSV(w io.Writer, report schema.Report, fmtFloat func(float64) string) error {
	header := []string{
		"run_id", "metric", "description", "tag", "count", "median", "q1", "q3",
		"min", "max", "mean", "std", "trend", "assessment", "chart_path", "skip_reason",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range report.Sections {
			if s.Skipped {
				row := []string{report.RunID, string(s.Metric), s.Description, "", "", "", "", "", "", "", "", "", "", "", "", s.SkipReason}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
				continue
			}
			for _, sum := range s.Summaries {
				assessment := ""
				if a, ok := s.AssessmentFor(sum.Tag); ok {
					assessment = a.Band.Label
				}
				row := []string{
					report.RunID,
					string(s.Metric),
					s.Description,
					string(sum.Tag),
					strconv.Itoa(sum.Count),
					fmtFloat(sum.Median),
					fmtFloat(sum.Q1),
					fmtFloat(sum.Q3),
					fmtFloat(sum.Min),
					fmtFloat(sum.Max),
					fmtFloat(sum.Mean),
					fmtFloat(sum.Std),
					string(s.Trend),
					assessment,
					s.ChartPath,
					"",
				}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}
