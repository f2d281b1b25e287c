// Package server exposes the normalization engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"opening-hours-normalizer/internal/normalize"
	"opening-hours-normalizer/internal/vocab"
	"opening-hours-normalizer/pkg/config"
	"opening-hours-normalizer/pkg/metrics"
)

type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	vocabs  *vocab.Registry
	service *normalize.Service
	http    *http.Server

	requestsTotal   *metrics.Counter
	normalizeTotal  *metrics.Counter
	normalizeMissed *metrics.Counter
	normalizeErrors *metrics.Counter
	requestSeconds  *metrics.Histogram
}

func New(cfg *config.Config, log *zap.Logger, vocabs *vocab.Registry) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		vocabs:  vocabs,
		service: normalize.NewService(vocabs, log),

		requestsTotal:   metrics.Default.Counter("http_requests_total", "HTTP requests served"),
		normalizeTotal:  metrics.Default.Counter("normalize_total", "Fragments normalized"),
		normalizeMissed: metrics.Default.Counter("normalize_unmatched_total", "Fragments no language matched"),
		normalizeErrors: metrics.Default.Counter("normalize_errors_total", "Normalization requests rejected"),
		requestSeconds: metrics.Default.Histogram("http_request_duration_seconds",
			"HTTP request duration", []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1}),
	}
	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Router builds the HTTP routing table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.logging)

	router.HandleFunc("/normalize", s.normalizeHandler).Methods("POST")
	router.HandleFunc("/normalize/batch", s.normalizeBatchHandler).Methods("POST")
	router.HandleFunc("/languages", s.languagesHandler).Methods("GET")
	router.HandleFunc("/healthz", s.healthHandler).Methods("GET")
	if s.cfg.MetricsEnabled {
		router.Handle(s.cfg.MetricsPath, metrics.Handler()).Methods("GET")
	}
	return router
}

// ListenAndServe blocks until the context is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("port", s.cfg.Port))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.requestsTotal.Inc()
		s.requestSeconds.Observe(time.Since(start).Seconds())
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
