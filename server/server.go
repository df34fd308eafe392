// Package server exposes outline evaluation over HTTP.
//
// Every request evaluates against its own variable store, so concurrent
// requests never observe each other's bindings.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/ardnew/sigma/log"
)

// DefaultMaxBody is the default request body limit in bytes.
const DefaultMaxBody = 1 << 20

// Timeouts applied by [Server.ListenAndServe].
const (
	ReadTimeout     = 30 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	log     log.Logger
	locale  language.Tag
	maxBody int64
	group   bool
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Server) { s.log = logger }
}

// WithMaxBody limits request bodies to n bytes.
func WithMaxBody(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// WithLocale sets the default number formatting locale. A request may
// override it with the "locale" query parameter.
func WithLocale(tag language.Tag) Option {
	return func(s *Server) { s.locale = tag }
}

// WithGrouping sets whether digit grouping is on by default. A request may
// override it with the "group" query parameter.
func WithGrouping(enable bool) Option {
	return func(s *Server) { s.group = enable }
}

// New creates and configures the HTTP server.
func New(opts ...Option) *Server {
	s := &Server{
		log:     log.Default(),
		locale:  language.AmericanEnglish,
		maxBody: DefaultMaxBody,
		group:   true,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/eval", s.handleEval)
		r.Post("/markdown", s.handleMarkdown)
		r.Post("/expr", s.handleExpr)
	})

	s.router = r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	errc := make(chan error, 1)

	go func() {
		s.log.InfoContext(ctx, "listening", slog.String("addr", addr))
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err

	case <-ctx.Done():
		s.log.InfoContext(ctx, "shutting down", slog.Any("cause", context.Cause(ctx)))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	}
}
