package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/finagent/internal/config"
	"github.com/agbru/finagent/internal/logging"
	appmetrics "github.com/agbru/finagent/internal/metrics"
	"github.com/agbru/finagent/internal/sysmon"
)

// shutdownTimeout bounds graceful drain on context cancellation.
const shutdownTimeout = 5 * time.Second

// Server is the diagnostics HTTP server. It serves /metrics, /healthz, and
// /configz and stops when its context is canceled.
type Server struct {
	addr     string
	cfg      *config.Config
	log      logging.Logger
	metrics  *Metrics
	security SecurityConfig
	memory   *appmetrics.MemoryCollector

	httpServer *http.Server
	started    time.Time
}

// New constructs a diagnostics server listening on addr. The registry should
// already carry the application's stage collectors.
func New(addr string, cfg *config.Config, log logging.Logger, reg *prometheus.Registry) *Server {
	s := &Server{
		addr:     addr,
		cfg:      cfg,
		log:      log,
		metrics:  NewMetrics(reg),
		security: DefaultSecurityConfig(),
		memory:   appmetrics.NewMemoryCollector(),
		started:  time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.instrument("/metrics", s.metrics.WritePrometheus))
	mux.HandleFunc("/healthz", s.instrument("/healthz", s.handleHealthz))
	mux.HandleFunc("/configz", s.instrument("/configz", s.handleConfigz))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// instrument chains the security and metrics middleware around a handler.
func (s *Server) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(path, SecurityMiddleware(s.security, next))
}

// metricsMiddleware tracks in-flight and completed requests.
func (s *Server) metricsMiddleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		start := time.Now()
		next(w, r)
		s.metrics.ObserveRequest(path, time.Since(start))
	}
}

// Run serves until ctx is canceled or the listener fails.
//
// Returns:
//   - error: The listener error, or nil after a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	s.log.Info("diagnostics server listening", logging.String("addr", s.addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info("diagnostics server stopped")
		return nil
	}
}

// healthResponse is the /healthz payload.
type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	HeapAllocMB   uint64  `json:"heap_alloc_mb"`
	CPUPercent    float64 `json:"cpu_percent"`
	CPUCount      int     `json:"cpu_count"`
	MemPercent    float64 `json:"mem_percent"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	sys := sysmon.Sample()
	snap := s.memory.Snapshot()
	writeJSON(w, healthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.started).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   snap.HeapAlloc / (1 << 20),
		CPUPercent:    sys.CPUPercent,
		CPUCount:      sys.CPUCount,
		MemPercent:    sys.MemPercent,
	})
}

// handleConfigz serves the sanitized configuration snapshot. Credentials are
// excluded at the source by Config.Snapshot.
func (s *Server) handleConfigz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.cfg.Snapshot())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
