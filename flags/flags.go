package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "ENTERPRISE_REPORTER"

// prefixEnvVars names the env-var aliases of a flag.
func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	EventsFile = &cli.StringFlag{
		Name:    "events",
		Value:   "",
		EnvVars: prefixEnvVars("EVENTS"),
		Usage:   "Path to the JSONL event stream to replay (also accepted as positional argument)",
	}
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Value:   "",
		EnvVars: prefixEnvVars("CONFIG"),
		Usage:   "Path to reporter config file (eg. 'reporter.yaml')",
	}
	OutputDir = &cli.StringFlag{
		Name:    "output-dir",
		Value:   "",
		EnvVars: prefixEnvVars("OUTPUT_DIR"),
		Usage:   "Directory the report artifacts are written to",
	}
	ReportTitle = &cli.StringFlag{
		Name:    "report-title",
		Value:   "",
		EnvVars: prefixEnvVars("REPORT_TITLE"),
		Usage:   "Title shown in the report header",
	}
	CompanyName = &cli.StringFlag{
		Name:    "company-name",
		Value:   "",
		EnvVars: prefixEnvVars("COMPANY_NAME"),
		Usage:   "Organization name shown in the report header",
	}
	ProjectName = &cli.StringFlag{
		Name:    "project-name",
		Value:   "",
		EnvVars: prefixEnvVars("PROJECT_NAME"),
		Usage:   "Project name shown in the report header",
	}
	PrimaryColor = &cli.StringFlag{
		Name:    "primary-color",
		Value:   "",
		EnvVars: prefixEnvVars("PRIMARY_COLOR"),
		Usage:   "Accent color for the HTML report (eg. '#667eea')",
	}
	Language = &cli.StringFlag{
		Name:    "language",
		Value:   "",
		EnvVars: prefixEnvVars("LANGUAGE"),
		Usage:   "Report language: uk, en or pl",
	}
	Screenshots = &cli.BoolFlag{
		Name:    "screenshots",
		Value:   true,
		EnvVars: prefixEnvVars("SCREENSHOTS"),
		Usage:   "Inline image attachments into the HTML report",
	}
	Serve = &cli.BoolFlag{
		Name:    "serve",
		Value:   false,
		EnvVars: prefixEnvVars("SERVE"),
		Usage:   "Serve the report directory over HTTP after the run",
	}
	ServeAddr = &cli.StringFlag{
		Name:    "serve-addr",
		Value:   "127.0.0.1:8080",
		EnvVars: prefixEnvVars("SERVE_ADDR"),
		Usage:   "Listen address of the report file server",
	}
	MetricsAddr = &cli.StringFlag{
		Name:    "metrics-addr",
		Value:   "127.0.0.1:7300",
		EnvVars: prefixEnvVars("METRICS_ADDR"),
		Usage:   "Listen address of the prometheus metrics server",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Log level: debug, info, warn or error",
	}
)

var requiredFlags = []cli.Flag{}

var optionalFlags = []cli.Flag{
	EventsFile,
	ConfigFile,
	OutputDir,
	ReportTitle,
	CompanyName,
	ProjectName,
	PrimaryColor,
	Language,
	Screenshots,
	Serve,
	ServeAddr,
	MetricsAddr,
	LogLevel,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
