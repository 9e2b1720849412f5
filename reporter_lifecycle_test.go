package reporter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-infra/enterprise-reporter/host"
	"github.com/qa-infra/enterprise-reporter/logging"
	"github.com/qa-infra/enterprise-reporter/types"
)

func testReporter(t *testing.T) (*Reporter, *bytes.Buffer, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "report")
	cfg := DefaultReporterConfig()
	cfg.OutputDir = dir
	cfg.Language = "en"
	cfg.ProjectName = "Storefront"

	var out bytes.Buffer
	rep, err := New(cfg, logging.NewNop(), WithOutput(&out))
	require.NoError(t, err)
	return rep, &out, dir
}

func completion(id, title, status string, d time.Duration) host.TestCompletion {
	return host.TestCompletion{
		TestID:    id,
		Title:     title,
		TitlePath: []string{"suite", title},
		File:      "suite.spec.ts",
		Status:    status,
		Duration:  d,
		StartTime: time.Now(),
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(types.ReporterConfig{}, logging.NewNop())
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))

	_, err = New(DefaultReporterConfig(), nil)
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}

func TestLifecycleHappyPath(t *testing.T) {
	rep, out, dir := testReporter(t)

	require.NoError(t, rep.OnRunBegin(host.RunConfig{Workers: 4}, host.TestPlan{TotalTests: 2}))
	require.NoError(t, rep.OnTestComplete(completion("a", "logs in", "passed", 2*time.Second)))
	require.NoError(t, rep.OnTestComplete(completion("b", "checks out", "passed", time.Second)))
	require.NoError(t, rep.OnRunEnd(host.RunResult{Status: "passed"}))

	// All three artifacts exist.
	for _, name := range []string{"index.html", "report.json", "report.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing artifact %s", name)
	}

	require.NoError(t, rep.Result())
	stats := rep.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Passed)

	console := out.String()
	assert.Contains(t, console, "Total Tests: 2")
	assert.Contains(t, console, "✅ suite > logs in (2.00s)")
	assert.Contains(t, console, "📁 Enterprise Report:")
}

func TestLifecycleFailureVerdict(t *testing.T) {
	rep, out, _ := testReporter(t)

	require.NoError(t, rep.OnRunBegin(host.RunConfig{}, host.TestPlan{TotalTests: 1}))
	require.NoError(t, rep.OnTestComplete(completion("a", "fails", "failed", time.Second)))
	require.NoError(t, rep.OnRunEnd(host.RunResult{Status: "failed"}))

	err := rep.Result()
	require.Error(t, err)
	assert.True(t, IsTestFailureError(err))
	assert.Contains(t, out.String(), "❌ suite > fails")
}

func TestLifecycleOrderEnforced(t *testing.T) {
	rep, _, _ := testReporter(t)

	// No events before run begin.
	err := rep.OnTestComplete(completion("a", "x", "passed", 0))
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))

	err = rep.OnRunEnd(host.RunResult{})
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))

	// Result before the run finished is a runtime error too.
	err = rep.Result()
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))

	require.NoError(t, rep.OnRunBegin(host.RunConfig{}, host.TestPlan{}))

	// Double begin rejected.
	err = rep.OnRunBegin(host.RunConfig{}, host.TestPlan{})
	require.Error(t, err)

	require.NoError(t, rep.OnRunEnd(host.RunResult{}))

	// Calls after run end rejected.
	err = rep.OnTestComplete(completion("a", "x", "passed", 0))
	require.Error(t, err)
	err = rep.OnRunEnd(host.RunResult{})
	require.Error(t, err)
}

func TestRunBeginCreatesOutputDir(t *testing.T) {
	rep, _, dir := testReporter(t)

	require.NoError(t, rep.OnRunBegin(host.RunConfig{}, host.TestPlan{}))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunBeginUncreatableOutputDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	cfg := DefaultReporterConfig()
	cfg.OutputDir = filepath.Join(blocker, "report")
	rep, err := New(cfg, logging.NewNop(), WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	err = rep.OnRunBegin(host.RunConfig{}, host.TestPlan{})
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}

func TestErrorTaxonomy(t *testing.T) {
	runtime := NewRuntimeError(os.ErrNotExist)
	assert.True(t, IsRuntimeError(runtime))
	assert.False(t, IsTestFailureError(runtime))

	failure := NewTestFailureError(2, 1)
	assert.True(t, IsTestFailureError(failure))
	assert.False(t, IsRuntimeError(failure))
	assert.Contains(t, failure.Error(), "2 failed")

	write := NewReportWriteError("html", os.ErrPermission)
	assert.Contains(t, write.Error(), "html")
	assert.ErrorIs(t, write, os.ErrPermission)
}
