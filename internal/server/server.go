// Package server exposes the sequence calculator over HTTP: a JSON API for
// sequence generation, a health endpoint, and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/numkit/seqcalc/internal/config"
	"github.com/numkit/seqcalc/internal/logging"
)

// shutdownGrace bounds how long in-flight requests may run after the server
// context is canceled.
const shutdownGrace = 5 * time.Second

// Server is the HTTP API server.
type Server struct {
	cfg     config.AppConfig
	log     logging.Logger
	metrics *Metrics
	router  *chi.Mux
}

// New creates a Server with its routes and metrics wired.
func New(cfg config.AppConfig, log logging.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: NewMetrics(),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler (exposed for tests).
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/v1/sequence", s.handleSequence)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// instrument tracks in-flight requests, records per-request metrics, and
// emits a structured access log line.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		s.metrics.ObserveRequest(r.URL.Path, strconv.Itoa(ww.Status()), elapsed.Seconds())
		s.log.Info("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", ww.Status()),
			logging.Dur("duration", elapsed),
		)
	})
}

// Run starts the HTTP server and blocks until the context is canceled or the
// listener fails. Shutdown is graceful within shutdownGrace.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server listening", logging.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
