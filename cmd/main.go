package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	reporter "github.com/qa-infra/enterprise-reporter"
	"github.com/qa-infra/enterprise-reporter/exitcodes"
	"github.com/qa-infra/enterprise-reporter/flags"
	"github.com/qa-infra/enterprise-reporter/host"
	"github.com/qa-infra/enterprise-reporter/logging"
	"github.com/qa-infra/enterprise-reporter/service"
)

var (
	Version   = "v1.0.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "enterprise-reporter"
	app.Usage = "Test execution reporting engine"
	app.Description = "enterprise-reporter replays a test run's event stream and renders HTML, JSON and Markdown reports"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if reporter.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if reporter.IsTestFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(exitcodes.RuntimeErr)
	}
}

func run(ctx *cli.Context) error {
	log, err := logging.New(ctx.String(flags.LogLevel.Name))
	if err != nil {
		return reporter.NewRuntimeError(err)
	}
	defer log.Sync() //nolint:errcheck

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName("enterprise-reporter"),
		otelconfig.WithServiceVersion(Version),
	)
	if err != nil {
		log.Warnw("Failed to configure OpenTelemetry", "err", err)
	} else {
		defer otelShutdown()
	}

	cfg, err := reporter.NewConfig(ctx, log)
	if err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	rep, err := reporter.New(cfg.Reporter, log)
	if err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("failed to create reporter: %w", err))
	}

	if err := host.ReplayFile(cfg.EventsFile, rep, log); err != nil {
		return reporter.NewRuntimeError(fmt.Errorf("failed to replay event stream: %w", err))
	}

	if cfg.Serve {
		serveReports(ctx.Context, cfg, log)
	}

	return rep.Result()
}

// serveReports exposes the generated report plus healthz and metrics
// until the process is interrupted.
func serveReports(ctx context.Context, cfg *reporter.Config, log *zap.SugaredLogger) {
	svc := service.New(service.Config{
		HealthzAddr: healthzAddr(cfg.ServeAddr),
		MetricsAddr: cfg.MetricsAddr,
		ReportAddr:  cfg.ServeAddr,
		ReportDir:   cfg.Reporter.OutputDir,
	}, log)
	svc.Start(ctx)
	defer svc.Shutdown()

	log.Infow("Serving report", "addr", cfg.ServeAddr, "dir", cfg.Reporter.OutputDir)
	<-ctx.Done()
}

// healthzAddr derives the healthz listen address from the report server
// address by shifting the port by one.
func healthzAddr(reportAddr string) string {
	h, p, err := net.SplitHostPort(reportAddr)
	if err != nil {
		return "127.0.0.1:8081"
	}
	var port int
	if _, err := fmt.Sscanf(p, "%d", &port); err != nil {
		return net.JoinHostPort(h, "8081")
	}
	return net.JoinHostPort(h, fmt.Sprintf("%d", port+1))
}
