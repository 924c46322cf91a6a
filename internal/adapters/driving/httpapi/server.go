// Package httpapi exposes the block catalog and invoker over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// ErrMissingPorts is returned when the registry or invoker is not provided.
var ErrMissingPorts = errors.New("httpapi: registry and invoker are required")

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	Registry driving.BlockRegistry
	Invoker  driving.BlockInvoker
	// History is optional; the history routes answer 503 without it.
	History driving.HistoryService
}

// Options configures the HTTP server.
type Options struct {
	// AllowedOrigins lists CORS origins. Empty allows none.
	AllowedOrigins []string
	// MaxBodyBytes caps invoke request bodies. Zero means 32 MiB.
	MaxBodyBytes int64
}

// Server serves the HTTP API.
type Server struct {
	ports   *Ports
	opts    Options
	handler http.Handler
}

// NewServer creates a new HTTP API server.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if ports == nil || ports.Registry == nil || ports.Invoker == nil {
		return nil, ErrMissingPorts
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 32 << 20
	}

	s := &Server{ports: ports, opts: opts}

	r := mux.NewRouter()
	r.Use(logRequests)
	s.registerRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	s.handler = otelhttp.NewHandler(c.Handler(r), "gcpblocks.httpapi",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
	return s, nil
}

func (s *Server) registerRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/services", s.handleServices).Methods(http.MethodGet)
	r.HandleFunc("/v1/blocks", s.handleListBlocks).Methods(http.MethodGet)
	r.HandleFunc("/v1/blocks/{id}:invoke", s.handleInvoke).Methods(http.MethodPost)
	r.HandleFunc("/v1/blocks/{id}:preview", s.handlePreview).Methods(http.MethodPost)
	r.HandleFunc("/v1/blocks/{id}", s.handleGetBlock).Methods(http.MethodGet)
	r.HandleFunc("/v1/history", s.handleListHistory).Methods(http.MethodGet)
	r.HandleFunc("/v1/history/{id}", s.handleGetHistory).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found", nil)
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http server shutdown: %v", err)
		}
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.WithFields(logger.Fields{
			"gcpblocks.http.method": r.Method,
			"gcpblocks.http.path":   r.URL.Path,
			"gcpblocks.http.status": rec.status,
			"gcpblocks.http.took":   time.Since(start).String(),
		}).Debug("request served")
	})
}
