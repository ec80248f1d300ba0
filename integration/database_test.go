//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestHistoryWithMySQL runs reports against a MySQL history backend.
func TestHistoryWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "qmetrics",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/qmetrics", host, port.Port())
	runHistoryScenario(t, "mysql", connStr)
}

// TestHistoryWithPostgres runs reports against a PostgreSQL history backend.
func TestHistoryWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runHistoryScenario(t, "postgresql", connStr)
}

// runHistoryScenario migrates, records two reports, exports and clears.
func runHistoryScenario(t *testing.T, backend, connStr string) {
	t.Helper()
	dir := writeFixtures(t)
	env := []string{
		"QMETRICS_HISTORY_BACKEND=" + backend,
		"QMETRICS_HISTORY_DB_CONNECT=" + connStr,
	}

	_, err := runCommand(t, dir, env, "history", "clear")
	require.NoError(t, err)

	_, err = runCommand(t, dir, env, "history", "migrate")
	require.NoError(t, err)

	for range 2 {
		_, err = runCommand(t, dir, env, "report", versionsFlag, "--charts=false", "--output", "json")
		require.NoError(t, err)
	}

	out, err := runCommand(t, dir, env, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Runs: 2")
	assert.Contains(t, out, "qmetrics_metric_summaries: 24 rows")

	_, err = runCommand(t, dir, env, "history", "export", "--output-file", dir+"/export")
	require.NoError(t, err)
	assert.FileExists(t, dir+"/export.runs.parquet")

	_, err = runCommand(t, dir, env, "history", "clear")
	require.NoError(t, err)
}
