package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/qmetrics/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 6
	DefaultChartDir  = "outputs"
)

// Config holds the runtime configuration for the report.
// This struct is the "final, validated" config.
type Config struct {
	DataDir  string
	Versions []schema.VersionSource
	Metrics  []schema.MetricID
	Scope    schema.RowScope

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Charts      bool
	ChartDir    string
	ChartFormat schema.ChartFormat
	ChartStyle  schema.ChartStyle

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from reportCmd.Flags() ---
	Versions    []string `mapstructure:"versions"`
	Metrics     []string `mapstructure:"metrics"`
	Scope       string   `mapstructure:"scope"`
	Charts      bool     `mapstructure:"charts"`
	ChartDir    string   `mapstructure:"chart-dir"`
	ChartFormat string   `mapstructure:"chart-format"`
	ChartStyle  string   `mapstructure:"chart-style"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Versions = append([]schema.VersionSource(nil), c.Versions...)
	clone.Metrics = append([]schema.MetricID(nil), c.Metrics...)
	return &clone
}

// Tags returns the configured version tags in order.
func (c *Config) Tags() []schema.VersionTag {
	tags := make([]schema.VersionTag, len(c.Versions))
	for i, v := range c.Versions {
		tags[i] = v.Tag
	}
	return tags
}

// Params returns the configuration values recorded alongside a history run.
func (c *Config) Params() map[string]any {
	versions := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		versions[i] = fmt.Sprintf("%s=%s", v.Tag, v.Path)
	}
	metrics := make([]string, len(c.Metrics))
	for i, m := range c.Metrics {
		metrics[i] = string(m)
	}
	return map[string]any{
		"data_dir":     c.DataDir,
		"versions":     versions,
		"metrics":      metrics,
		"scope":        string(c.Scope),
		"chart_format": string(c.ChartFormat),
		"chart_style":  string(c.ChartStyle),
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := resolveDataDir(cfg, input); err != nil {
		return err
	}
	if err := processVersions(cfg, input); err != nil {
		return err
	}
	if err := processMetrics(cfg, input); err != nil {
		return err
	}
	if err := processCharts(cfg, input); err != nil {
		return err
	}
	return nil
}

// ParseBoolString parses yes/no style values used by flags such as --color.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "y", "true", "1", "on":
		return true, nil
	case "no", "n", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0, got %q", s)
	}
}

// ParseVersionSpec splits a "tag=path" entry.
func ParseVersionSpec(spec string) (schema.VersionSource, error) {
	tag, path, ok := strings.Cut(spec, "=")
	tag = strings.TrimSpace(tag)
	path = strings.TrimSpace(path)
	if !ok || tag == "" || path == "" {
		return schema.VersionSource{}, fmt.Errorf("invalid version %q. expected tag=path", spec)
	}
	return schema.VersionSource{Tag: schema.VersionTag(tag), Path: path}, nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	default:
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	return nil
}

// ParseBackend normalizes a backend name, treating empty as none.
func ParseBackend(s string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if backend == "" {
		return schema.NoneBackend, nil
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateSimpleInputs processes and validates output and backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	cfg.Scope = schema.RowScope(strings.ToLower(input.Scope))
	if cfg.Scope == "" {
		cfg.Scope = schema.ClassScope
	}
	if _, ok := schema.ValidRowScopes[cfg.Scope]; !ok {
		return fmt.Errorf("invalid scope '%s'. must be class, method", input.Scope)
	}

	backend, err := ParseBackend(input.HistoryBackend)
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// resolveDataDir resolves the directory that relative input and chart paths live in.
func resolveDataDir(cfg *Config, input *ConfigRawInput) error {
	dir := input.DataDirStr
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve data dir %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("data dir does not exist: %s", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir is not a directory: %s", dir)
	}
	cfg.DataDir = abs
	return nil
}

// processVersions parses the ordered tag=path list.
func processVersions(cfg *Config, input *ConfigRawInput) error {
	specs := input.Versions
	if len(specs) == 0 {
		specs = schema.DefaultVersions
	}

	seen := make(map[schema.VersionTag]struct{}, len(specs))
	cfg.Versions = cfg.Versions[:0]
	for _, spec := range specs {
		src, err := ParseVersionSpec(spec)
		if err != nil {
			return err
		}
		if _, dup := seen[src.Tag]; dup {
			return fmt.Errorf("duplicate version tag %q", src.Tag)
		}
		seen[src.Tag] = struct{}{}
		if !filepath.IsAbs(src.Path) {
			src.Path = filepath.Join(cfg.DataDir, src.Path)
		}
		cfg.Versions = append(cfg.Versions, src)
	}
	return nil
}

// processMetrics parses the ordered metric list.
func processMetrics(cfg *Config, input *ConfigRawInput) error {
	cfg.Metrics = cfg.Metrics[:0]
	if len(input.Metrics) == 0 {
		cfg.Metrics = append(cfg.Metrics, schema.DefaultMetrics...)
		return nil
	}

	seen := make(map[schema.MetricID]struct{}, len(input.Metrics))
	for _, m := range input.Metrics {
		id := schema.MetricID(strings.TrimSpace(m))
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate metric %q", id)
		}
		seen[id] = struct{}{}
		cfg.Metrics = append(cfg.Metrics, id)
	}
	if len(cfg.Metrics) == 0 {
		return fmt.Errorf("at least one metric is required")
	}
	return nil
}

// processCharts validates chart rendering options.
func processCharts(cfg *Config, input *ConfigRawInput) error {
	cfg.Charts = input.Charts

	cfg.ChartFormat = schema.ChartFormat(strings.ToLower(input.ChartFormat))
	if cfg.ChartFormat == "" {
		cfg.ChartFormat = schema.PNGChart
	}
	if _, ok := schema.ValidChartFormats[cfg.ChartFormat]; !ok {
		return fmt.Errorf("invalid chart format '%s'. must be png, svg, pdf, html", input.ChartFormat)
	}

	cfg.ChartStyle = schema.ChartStyle(strings.ToLower(input.ChartStyle))
	if cfg.ChartStyle == "" {
		cfg.ChartStyle = schema.EnhancedStyle
	}
	if _, ok := schema.ValidChartStyles[cfg.ChartStyle]; !ok {
		return fmt.Errorf("invalid chart style '%s'. must be basic, enhanced", input.ChartStyle)
	}

	dir := input.ChartDir
	if dir == "" {
		dir = DefaultChartDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.DataDir, dir)
	}
	cfg.ChartDir = dir
	return nil
}
