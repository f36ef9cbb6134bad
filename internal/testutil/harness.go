// Package testutil provides the harness used by the integration tests: it
// writes fixture files to a temporary directory, runs the app against them
// and captures the log output and the written manifest.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adminde/household-data/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Dir       string
	// Output is the written manifest, nil if none was written.
	Output []byte
}

// RunBuild writes files into a fresh directory and runs a build with the
// package definition named configName.
func RunBuild(t *testing.T, files map[string]string, configName string, opts ...app.Option) *HarnessResult {
	t.Helper()
	return RunBuildWithConfig(context.Background(), t, files, func(cfg *app.Config) {
		cfg.ConfigPath = filepath.Join(filepath.Dir(cfg.OutputPath), configName)
	}, opts...)
}

// RunBuildWithConfig is RunBuild with full control over the app config. The
// config passed to mutate points its output into the temporary directory.
func RunBuildWithConfig(ctx context.Context, t *testing.T, files map[string]string, mutate func(cfg *app.Config), opts ...app.Option) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg := app.Config{
		ConfigPath:  tmpDir,
		OutputPath:  filepath.Join(tmpDir, "datapackage.json"),
		WorkerCount: 2,
		LogLevel:    "debug",
		LogFormat:   "text",
	}
	if mutate != nil {
		mutate(&cfg)
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	loader, err := app.LoaderFor(appConfig.ConfigPath)
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	runErr := app.NewApp(logBuffer, appConfig, loader, opts...).Run(ctx)

	if os.Getenv("HOUSEHOLD_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	output, readErr := os.ReadFile(appConfig.OutputPath)
	if readErr != nil {
		output = nil
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Dir:       tmpDir,
		Output:    output,
	}
}
