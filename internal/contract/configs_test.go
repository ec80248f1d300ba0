package contract

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/qmetrics/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation for the given data dir.
func validInput(dir string) *ConfigRawInput {
	return &ConfigRawInput{
		DataDirStr:     dir,
		Output:         "text",
		Precision:      1,
		Color:          "no",
		HistoryBackend: "none",
		Charts:         true,
	}
}

func TestProcessAndValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: "invalid output format"},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: "--output-file is required"},
		{name: "precision too large", mutate: func(in *ConfigRawInput) { in.Precision = 9 }, expectError: "precision must be between"},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: "width cannot be negative"},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: "invalid --color value"},
		{name: "invalid scope", mutate: func(in *ConfigRawInput) { in.Scope = "package" }, expectError: "invalid scope"},
		{name: "invalid backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "oracle" }, expectError: "invalid history backend"},
		{name: "mysql without connection", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "mysql" }, expectError: "history-db-connect is required"},
		{name: "bad version spec", mutate: func(in *ConfigRawInput) { in.Versions = []string{"r1"} }, expectError: "expected tag=path"},
		{name: "duplicate tag", mutate: func(in *ConfigRawInput) { in.Versions = []string{"r1=a.csv", "r1=b.csv"} }, expectError: "duplicate version tag"},
		{name: "duplicate metric", mutate: func(in *ConfigRawInput) { in.Metrics = []string{"CountLineCode", "CountLineCode"} }, expectError: "duplicate metric"},
		{name: "invalid chart format", mutate: func(in *ConfigRawInput) { in.ChartFormat = "gif" }, expectError: "invalid chart format"},
		{name: "invalid chart style", mutate: func(in *ConfigRawInput) { in.ChartStyle = "fancy" }, expectError: "invalid chart style"},
		{name: "missing data dir", mutate: func(in *ConfigRawInput) { in.DataDirStr = filepath.Join(dir, "nope") }, expectError: "data dir does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(dir)
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput(dir)))

	assert.Equal(t, schema.ClassScope, cfg.Scope)
	assert.Equal(t, schema.PNGChart, cfg.ChartFormat)
	assert.Equal(t, schema.EnhancedStyle, cfg.ChartStyle)
	assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
	assert.Equal(t, schema.DefaultMetrics, cfg.Metrics)
	assert.Equal(t, filepath.Join(cfg.DataDir, DefaultChartDir), cfg.ChartDir)
	assert.False(t, cfg.UseColors)

	require.Len(t, cfg.Versions, 3)
	assert.Equal(t, schema.VersionTag("r5.11.4"), cfg.Versions[0].Tag)
	assert.Equal(t, filepath.Join(cfg.DataDir, "r5.11.4-filtered.csv"), cfg.Versions[0].Path)
	assert.Equal(t, []schema.VersionTag{"r5.11.4", "r5.12.0", "r5.12.1"}, cfg.Tags())
}

func TestProcessAndValidateCustomLists(t *testing.T) {
	dir := t.TempDir()
	input := validInput(dir)
	input.Versions = []string{"v2=/abs/two.csv", " v1 = one.csv "}
	input.Metrics = []string{"CountLineCode", " ", "SumCyclomatic"}
	input.Scope = "METHOD"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, []schema.VersionTag{"v2", "v1"}, cfg.Tags())
	assert.Equal(t, "/abs/two.csv", cfg.Versions[0].Path)
	assert.Equal(t, filepath.Join(cfg.DataDir, "one.csv"), cfg.Versions[1].Path)
	assert.Equal(t, []schema.MetricID{schema.CountLineCode, schema.SumCyclomatic}, cfg.Metrics)
	assert.Equal(t, schema.MethodScope, cfg.Scope)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", "on", ""} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0", "off"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		backend schema.DatabaseBackend
		conn    string
		wantErr bool
	}{
		{schema.SQLiteBackend, "", false},
		{schema.NoneBackend, "", false},
		{schema.MySQLBackend, "root:pw@tcp(localhost:3306)/qmetrics", false},
		{schema.MySQLBackend, "root:pw@localhost/qmetrics", true},
		{schema.MySQLBackend, "root:pw@tcp(localhost:3306)", true},
		{schema.PostgreSQLBackend, "host=localhost dbname=qmetrics", false},
		{schema.PostgreSQLBackend, "dbname=qmetrics", true},
		{schema.PostgreSQLBackend, "host=localhost", true},
	}
	for _, tt := range tests {
		err := ValidateDatabaseConnectionString(tt.backend, tt.conn)
		if tt.wantErr {
			assert.Error(t, err, "%s %q", tt.backend, tt.conn)
		} else {
			assert.NoError(t, err, "%s %q", tt.backend, tt.conn)
		}
	}
}

func TestConfigCloneAndParams(t *testing.T) {
	cfg := &Config{
		DataDir:  "/data",
		Versions: []schema.VersionSource{{Tag: "a", Path: "/data/a.csv"}},
		Metrics:  []schema.MetricID{schema.CountLineCode},
		Scope:    schema.ClassScope,
	}
	clone := cfg.Clone()
	clone.Versions[0].Tag = "b"
	clone.Metrics[0] = schema.SumCyclomatic
	assert.Equal(t, schema.VersionTag("a"), cfg.Versions[0].Tag)
	assert.Equal(t, schema.CountLineCode, cfg.Metrics[0])

	params := cfg.Params()
	assert.Equal(t, []string{"a=/data/a.csv"}, params["versions"])
	assert.Equal(t, []string{"CountLineCode"}, params["metrics"])
	assert.Equal(t, "class", params["scope"])
}
