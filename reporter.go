// Package reporter is the test-execution reporting engine. It consumes
// host lifecycle events, aggregates normalized test records and renders
// the report artifacts at run end.
package reporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qa-infra/enterprise-reporter/host"
	"github.com/qa-infra/enterprise-reporter/i18n"
	"github.com/qa-infra/enterprise-reporter/ingest"
	"github.com/qa-infra/enterprise-reporter/metrics"
	"github.com/qa-infra/enterprise-reporter/reporting"
	"github.com/qa-infra/enterprise-reporter/store"
	"github.com/qa-infra/enterprise-reporter/templates"
	"github.com/qa-infra/enterprise-reporter/types"
)

// Version is stamped into the environment panel of every report.
const Version = "1.0.0"

type runState int

const (
	stateIdle runState = iota
	stateRunning
	stateFinalizing
	stateDone
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateFinalizing:
		return "finalizing"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Reporter implements the host.Reporter lifecycle. Calls are serialized
// with a mutex; records are kept in arrival order.
type Reporter struct {
	mu    sync.Mutex
	state runState

	cfg   types.ReporterConfig
	log   *zap.SugaredLogger
	t     i18n.Table
	norm  *ingest.Normalizer
	store *store.Store
	out   io.Writer

	runID        string
	startTime    time.Time
	endTime      time.Time
	workers      int
	totalPlanned int
	stats        types.RunStats
}

var _ host.Reporter = (*Reporter)(nil)

// Option customizes a Reporter.
type Option func(*Reporter)

// WithOutput redirects the console progress and banner output.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) { r.out = w }
}

// New validates the configuration and returns an idle Reporter.
func New(cfg types.ReporterConfig, log *zap.SugaredLogger, opts ...Option) (*Reporter, error) {
	if cfg.OutputDir == "" {
		return nil, NewRuntimeError(errors.New("output directory is required"))
	}
	if log == nil {
		return nil, NewRuntimeError(errors.New("logger is required"))
	}

	r := &Reporter{
		state: stateIdle,
		cfg:   cfg,
		log:   log,
		t:     i18n.Strings(cfg.Language),
		norm:  ingest.New(cfg, log),
		store: store.New(),
		out:   os.Stdout,
		runID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(r)
	}

	log.Debugw("Created reporter",
		"runID", r.runID,
		"outputDir", cfg.OutputDir,
		"language", cfg.Language)
	return r, nil
}

// RunID identifies this run in metrics and logs.
func (r *Reporter) RunID() string { return r.runID }

// OnRunBegin captures run metadata, creates the output directory and
// prints the start banner.
func (r *Reporter) OnRunBegin(cfg host.RunConfig, plan host.TestPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateIdle {
		return NewRuntimeError(fmt.Errorf("run begin in state %s", r.state))
	}

	r.startTime = time.Now()
	r.workers = cfg.Workers
	if r.workers <= 0 {
		r.workers = 1
	}
	r.totalPlanned = plan.TotalTests

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to create output directory '%s': %w", r.cfg.OutputDir, err))
	}

	printStartBanner(r.out, r.cfg, r.totalPlanned, r.workers)
	r.state = stateRunning
	r.log.Infow("Run started",
		"runID", r.runID,
		"plannedTests", r.totalPlanned,
		"workers", r.workers)
	return nil
}

// OnTestComplete normalizes and records one finished attempt and prints
// a progress line. Ingestion faults degrade, they never abort the run.
func (r *Reporter) OnTestComplete(ev host.TestCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateRunning {
		return NewRuntimeError(fmt.Errorf("test completion in state %s", r.state))
	}

	rec := r.norm.Normalize(ev)
	r.store.Record(rec)
	fmt.Fprintf(r.out, "%s %s (%.2fs)\n",
		templates.StatusSymbol(rec.Status), rec.FullTitle, rec.Duration.Seconds())
	return nil
}

// OnRunEnd computes final statistics, prints the summary and renders all
// report artifacts. After a successful return the reporter is done and
// rejects further lifecycle calls.
func (r *Reporter) OnRunEnd(res host.RunResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateRunning {
		return NewRuntimeError(fmt.Errorf("run end in state %s", r.state))
	}
	r.state = stateFinalizing

	r.endTime = time.Now()
	wallClock := r.endTime.Sub(r.startTime)

	env := types.EnvironmentInfo{
		OS:              runtime.GOOS,
		GoVersion:       runtime.Version(),
		ReporterVersion: Version,
		Timestamp:       r.endTime.UTC().Format(time.RFC3339),
		Duration:        wallClock,
		Workers:         r.workers,
	}
	snap := r.store.Snapshot(env, r.cfg)
	r.stats = snap.Stats

	printSummaryBanner(r.out, r.t, snap.Stats)
	formatProjectTable(r.out, snap)
	formatFailureDetails(r.out, r.t, snap)

	if err := r.renderArtifacts(snap); err != nil {
		metrics.RecordErrorDetails("report_write", err)
		return NewRuntimeError(err)
	}

	metrics.RecordRun(r.cfg.ProjectName, r.runID, snap.Stats, wallClock)
	r.state = stateDone

	reportPath, err := filepath.Abs(filepath.Join(r.cfg.OutputDir, reporting.HTMLFileName))
	if err != nil {
		reportPath = filepath.Join(r.cfg.OutputDir, reporting.HTMLFileName)
	}
	fmt.Fprintf(r.out, "\n📁 Enterprise Report: %s\n\n", reportPath)
	r.log.Infow("Run finished",
		"runID", r.runID,
		"hostStatus", res.Status,
		"total", snap.Stats.Total,
		"failed", snap.Stats.Failed,
		"passRate", fmt.Sprintf("%.1f", snap.Stats.PassRate))
	return nil
}

func (r *Reporter) renderArtifacts(snap *types.Snapshot) error {
	data, err := reporting.BuildReportData(snap)
	if err != nil {
		return err
	}

	htmlSink, err := reporting.NewHTMLSink(r.cfg.OutputDir, r.log)
	if err != nil {
		return NewReportWriteError("html", err)
	}
	sinks := []reporting.Sink{
		htmlSink,
		reporting.NewJSONSink(r.cfg.OutputDir, r.log),
		reporting.NewMarkdownSink(r.cfg.OutputDir, r.log),
	}
	for _, sink := range sinks {
		if err := sink.Render(data); err != nil {
			return NewReportWriteError(sink.Name(), err)
		}
	}
	return nil
}

// Result reports the run's verdict for exit-code purposes: nil when all
// tests passed or were skipped, TestFailureError otherwise. Calling it
// before run end is a runtime error.
func (r *Reporter) Result() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateDone {
		return NewRuntimeError(fmt.Errorf("result requested in state %s", r.state))
	}
	if r.stats.HasFailures() {
		return NewTestFailureError(r.stats.Failed, r.stats.TimedOut)
	}
	return nil
}

// Stats returns the final statistics. Zero value before run end.
func (r *Reporter) Stats() types.RunStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
