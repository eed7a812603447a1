// Package server implements the circos HTTP API.
//
// Routes:
//
//	GET  /healthz                        liveness
//	POST /v1/layouts                     solve a figure (JSON or TOML body), store the scene
//	GET  /v1/layouts/{id}                stored scene as JSON
//	GET  /v1/layouts/{id}/render         render a stored scene (?format=svg|png|pdf|json|dot|links)
//	GET  /v1/layouts/{id}/qr             QR code linking to the rendered SVG
//	POST /v1/render                      render a figure directly (?format=...)
//
// Errors are JSON objects {"code": "...", "message": "..."}.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/circos/pkg/buildinfo"
	"github.com/matzehuels/circos/pkg/pipeline"
)

// DefaultMaxBody bounds request bodies.
const DefaultMaxBody = 8 << 20

// Server serves the HTTP API over a pipeline runner. Stored scenes live in
// the runner's cache, so a NullCache runner can render but answers
// POST /v1/layouts with 501.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	router  chi.Router
	maxBody int64
	timeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBody sets the request body limit in bytes.
func WithMaxBody(n int64) Option { return func(s *Server) { s.maxBody = n } }

// WithTimeout bounds the time spent on a single request.
func WithTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// New creates a server. A nil logger logs through log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:  runner,
		logger:  logger,
		maxBody: DefaultMaxBody,
		timeout: time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Get("/layouts/{id}/render", s.handleRenderLayout)
		r.Get("/layouts/{id}/qr", s.handleLayoutQR)
		r.Post("/render", s.handleRenderFigure)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errNotFound("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeStatus(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.serve(ctx, srv, srv.ListenAndServe)
}

func (s *Server) serve(ctx context.Context, srv *http.Server, listen func() error) error {
	errc := make(chan error, 1)
	go func() { errc <- listen() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "addr", srv.Addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
