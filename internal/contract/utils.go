package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/huangsam/qmetrics/schema"
)

// Color variables for console output.
var (
	PoorColor     = color.New(color.FgRed, color.Bold) // PoorColor represents standard danger.
	ModerateColor = color.New(color.FgYellow)          // ModerateColor represents standard caution, not bold.
	LowColor      = color.New(color.FgMagenta)         // LowColor represents an under-used design signal.
	GoodColor     = color.New(color.FgCyan)            // GoodColor represents informational / healthy signal.
)

// GetColorLabel returns a colored band label for console output (table).
func GetColorLabel(band schema.Band) string {
	switch band.Level {
	case schema.LevelPoor:
		return PoorColor.Sprint(band.Label)
	case schema.LevelModerate:
		return ModerateColor.Sprint(band.Label)
	case schema.LevelLow:
		return LowColor.Sprint(band.Label)
	default:
		return GoodColor.Sprint(band.Label)
	}
}

// GetTrendLabel returns a colored trend label. Growth is flagged since every
// cataloged metric gets worse as it increases.
func GetTrendLabel(trend schema.Trend, useColors bool) string {
	if !useColors {
		return string(trend)
	}
	switch trend {
	case schema.TrendIncreasing:
		return ModerateColor.Sprint(trend)
	case schema.TrendDecreasing:
		return GoodColor.Sprint(trend)
	default:
		return string(trend)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ChartFileName returns the deterministic chart file name for a metric.
func ChartFileName(metric schema.MetricID, format schema.ChartFormat) string {
	return fmt.Sprintf("%s_boxplot.%s", metric, format)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".qmetrics_history.db"
	}
	return filepath.Join(homeDir, ".qmetrics_history.db")
}
