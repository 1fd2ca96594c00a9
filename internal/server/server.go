// Package server exposes the profile analyses over HTTP with gin.
//
// Routes:
//
//	GET  /healthz          liveness
//	GET  /v1/word/:word    profile.AnalyzeWordContext
//	POST /v1/signature     profile.AnalyzeSignature (SignatureRequest body)
//	GET  /v1/qp/:word      profile.QuasiParallelogramContext
//	GET  /v1/necklaces     necklace enumeration (?content=5,2,2&limit=100)
//	GET  /metrics          Prometheus exposition, when enabled
//
// The word, signature, qp and necklaces routes run under analysis.timeout.
// A request that runs out of time gets 503 with code TIMEOUT. Words are
// capped at profile.MaxScaleLen letters.
//
// Every response carries an X-Request-ID header, taken from the request or
// generated, and every request is logged with it.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ternary/internal/config"
)

// Server wires the handlers, middleware and metrics around one gin engine.
type Server struct {
	cfg      config.Config
	log      *slog.Logger
	version  string
	registry *prometheus.Registry
	metrics  *Metrics
	engine   *gin.Engine
}

// New builds a server for cfg. Collectors go to a registry owned by the
// server, so several servers may coexist in one process.
func New(cfg config.Config, log *slog.Logger, version string) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		version:  version,
		registry: reg,
		metrics:  NewMetrics(reg),
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestID(), accessLog(log))
	s.routes()

	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)

	v1 := s.engine.Group("/v1")
	v1.GET("/word/:word", s.handleWord)
	v1.POST("/signature", s.handleSignature)
	v1.GET("/qp/:word", s.handleQP)
	v1.GET("/necklaces", s.handleNecklaces)

	if s.cfg.Server.Metrics {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Routes lists the registered routes.
func (s *Server) Routes() gin.RoutesInfo { return s.engine.Routes() }

// Run serves on the configured address until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", "addr", srv.Addr, "metrics", s.cfg.Server.Metrics)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.log.Info("shutting down", "addr", srv.Addr)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// analysisContext bounds one analysis by the configured timeout.
func (s *Server) analysisContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Analysis.Timeout <= 0 {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, s.cfg.Analysis.Timeout)
}
