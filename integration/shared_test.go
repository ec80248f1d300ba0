//go:build basic || database

// Package integration contains end-to-end tests for the qmetrics CLI.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// sharedBinaryPath holds the path to a shared qmetrics binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBinary returns the path to the qmetrics binary, building it once if needed.
func getBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "qmetrics-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binPath := filepath.Join(tempDir, "qmetrics")
		buildCmd := exec.Command("go", "build", "-o", binPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if err := buildCmd.Run(); err != nil {
			panic(fmt.Sprintf("failed to build qmetrics: %v", err))
		}

		sharedBinaryPath = binPath
	})

	return sharedBinaryPath
}

// fixtureHeader is shared by every generated version file.
const fixtureHeader = "Kind,Name,File,SumCyclomatic,PercentLackOfCohesion,CountClassCoupled,MaxInheritanceTree,CountDeclMethod,CountLineCode"

// fixtureRows holds the class and method rows of each generated version.
var fixtureRows = map[string][]string{
	"r1": {
		"Public Class,a.A,a.java,4,20,3,1,5,120",
		"Private Class,a.B,a.java,8,40,5,2,7,300",
		"Public Class,a.C,c.java,12,60,9,1,,80",
		"Public Method,a.A.run,a.java,2,,,,,15",
	},
	"r2": {
		"Public Class,a.A,a.java,6,30,4,1,5,150",
		"Private Class,a.B,a.java,10,70,6,2,8,320",
		"Public Class,a.C,c.java,16,90,12,3,4,90",
		"Public Method,a.A.run,a.java,3,,,,,18",
	},
}

// versionsFlag selects the two generated version files.
const versionsFlag = "--versions=r1=r1.csv,r2=r2.csv"

// writeFixtures writes r1.csv and r2.csv into a fresh data dir and returns it.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, tag := range []string{"r1", "r2"} {
		content := fixtureHeader + "\n"
		for _, row := range fixtureRows[tag] {
			content += row + "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, tag+".csv"), []byte(content), 0o644))
	}
	return dir
}

// runCommand runs the binary in dir with env and returns its combined output.
func runCommand(t *testing.T, dir string, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}
