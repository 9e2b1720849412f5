// Package service hosts the optional HTTP surface: health checks,
// prometheus metrics and a static server for the generated report.
package service

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/qa-infra/enterprise-reporter/metrics"
)

// Config wires the service's listen addresses and the report directory.
type Config struct {
	HealthzAddr string
	MetricsAddr string
	ReportAddr  string
	ReportDir   string
}

type Service struct {
	Healthz *HealthzServer
	Metrics *MetricsServer
	Report  *ReportServer

	cfg Config
	log *zap.SugaredLogger
}

func New(cfg Config, log *zap.SugaredLogger) *Service {
	return &Service{
		Healthz: &HealthzServer{log: log},
		Metrics: &MetricsServer{},
		Report:  &ReportServer{dir: cfg.ReportDir, log: log},
		cfg:     cfg,
		log:     log,
	}
}

func (s *Service) Start(ctx context.Context) {
	s.log.Infow("service starting")

	go func() {
		s.log.Infow("starting healthz server", "addr", s.cfg.HealthzAddr)
		if err := s.Healthz.Start(ctx, s.cfg.HealthzAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorw("error starting healthz server", "err", err)
			metrics.RecordErrorDetails("error starting healthz server", err)
		}
	}()

	go func() {
		s.log.Infow("starting metrics server", "addr", s.cfg.MetricsAddr)
		if err := s.Metrics.Start(ctx, s.cfg.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorw("error starting metrics server", "err", err)
			metrics.RecordErrorDetails("error starting metrics server", err)
		}
	}()

	go func() {
		s.log.Infow("starting report server", "addr", s.cfg.ReportAddr, "dir", s.cfg.ReportDir)
		if err := s.Report.Start(ctx, s.cfg.ReportAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorw("error starting report server", "err", err)
			metrics.RecordErrorDetails("error starting report server", err)
		}
	}()

	s.log.Infow("service started")
}

func (s *Service) Shutdown() {
	s.log.Infow("service shutting down")

	_ = s.Healthz.Shutdown()
	s.log.Infow("healthz stopped")

	_ = s.Metrics.Shutdown()
	s.log.Infow("metrics stopped")

	_ = s.Report.Shutdown()
	s.log.Infow("report server stopped")

	s.log.Infow("service stopped")
}
