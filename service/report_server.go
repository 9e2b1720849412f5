package service

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// ReportServer serves the generated report directory so the run's
// artifacts can be browsed without copying them anywhere.
type ReportServer struct {
	ctx    context.Context
	server *http.Server
	dir    string
	log    *zap.SugaredLogger
}

func (s *ReportServer) Start(ctx context.Context, addr string) error {
	hdlr := http.NewServeMux()
	hdlr.Handle("/", s.logged(http.FileServer(http.Dir(s.dir))))
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
	})
	server := &http.Server{
		Handler: c.Handler(hdlr),
		Addr:    addr,
	}
	s.server = server
	s.ctx = ctx
	return s.server.ListenAndServe()
}

func (s *ReportServer) Shutdown() error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(s.ctx)
}

func (s *ReportServer) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debugw("Serving report asset", "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
