package reporter

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/qa-infra/enterprise-reporter/flags"
	"github.com/qa-infra/enterprise-reporter/types"
)

// Config holds the application configuration
type Config struct {
	Reporter types.ReporterConfig

	EventsFile  string // JSONL event stream to replay
	Serve       bool   // Serve the report directory after the run
	ServeAddr   string // Address of the report file server
	MetricsAddr string // Address of the prometheus metrics server

	Log *zap.SugaredLogger
}

// DefaultReporterConfig returns the explicit defaults for every
// recognized option.
func DefaultReporterConfig() types.ReporterConfig {
	return types.ReporterConfig{
		OutputDir:   "test-results/enterprise-report",
		ReportTitle: "Test Execution Report",
		CompanyName: "Your Company",
		ProjectName: "Test Suite",

		ShowPassedTests:    true,
		ShowSkippedTests:   true,
		IncludeScreenshots: true,
		IncludeVideos:      true,
		IncludeTraces:      true,

		Theme:               "light",
		PrimaryColor:        "#667eea",
		ShowEnvironmentInfo: true,

		TestCategories: []string{"smoke", "regression", "integration", "e2e"},
		Language:       "uk",
	}
}

// LoadReporterConfig reads a YAML config file and overlays it on the
// defaults. Fields absent from the file keep their default values.
func LoadReporterConfig(path string) (types.ReporterConfig, error) {
	cfg := DefaultReporterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return cfg, nil
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log *zap.SugaredLogger) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}

	rc := DefaultReporterConfig()
	if path := ctx.String(flags.ConfigFile.Name); path != "" {
		var err error
		rc, err = LoadReporterConfig(path)
		if err != nil {
			return nil, err
		}
	}

	// CLI flags win over the config file.
	if ctx.IsSet(flags.OutputDir.Name) {
		rc.OutputDir = ctx.String(flags.OutputDir.Name)
	}
	if ctx.IsSet(flags.ReportTitle.Name) {
		rc.ReportTitle = ctx.String(flags.ReportTitle.Name)
	}
	if ctx.IsSet(flags.CompanyName.Name) {
		rc.CompanyName = ctx.String(flags.CompanyName.Name)
	}
	if ctx.IsSet(flags.ProjectName.Name) {
		rc.ProjectName = ctx.String(flags.ProjectName.Name)
	}
	if ctx.IsSet(flags.PrimaryColor.Name) {
		rc.PrimaryColor = ctx.String(flags.PrimaryColor.Name)
	}
	if ctx.IsSet(flags.Language.Name) {
		rc.Language = ctx.String(flags.Language.Name)
	}
	if ctx.IsSet(flags.Screenshots.Name) {
		rc.IncludeScreenshots = ctx.Bool(flags.Screenshots.Name)
	}

	if rc.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}

	eventsFile := ctx.String(flags.EventsFile.Name)
	if eventsFile == "" {
		eventsFile = ctx.Args().First()
	}
	if eventsFile == "" {
		return nil, errors.New("event stream file is required (positional argument or --events)")
	}

	return &Config{
		Reporter:    rc,
		EventsFile:  eventsFile,
		Serve:       ctx.Bool(flags.Serve.Name),
		ServeAddr:   ctx.String(flags.ServeAddr.Name),
		MetricsAddr: ctx.String(flags.MetricsAddr.Name),
		Log:         log,
	}, nil
}
