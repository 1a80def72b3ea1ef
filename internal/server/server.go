// Package server hosts the settings API and renders accommodated pages.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/accommodate/internal/accommodation"
	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/logger"
	"github.com/alexisbeaulieu97/accommodate/internal/metrics"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/profiles"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// Options wires the server to the application.
type Options struct {
	Store    *settings.Store
	Profiles *profiles.Controller
	Chrome   *chrome.Controller
	Metrics  *metrics.Metrics
	Logger   ports.Logger

	// Root is the directory served under /pages.
	Root string
	// Locale is used for page labels when the request has no Accept-Language.
	Locale         string
	Accommodations accommodation.Options
}

// Server is the HTTP host.
type Server struct {
	opts Options
	log  ports.Logger
}

// New creates a server. Store, Profiles and Chrome are required.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Server{opts: opts, log: log.With("component", "server")}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.opts.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
		r.Patch("/settings/{section}/{field}", s.handlePatchSetting)
		r.Post("/settings/reset", s.handleReset)
		r.Post("/profiles/{name}", s.handleProfile)
		r.Post("/widget/position/toggle", s.handleTogglePosition)
	})

	r.Get("/pages", s.handlePage)
	r.Get("/pages/*", s.handlePage)

	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info("server stopped")
		return nil
	}
}

// requestID tags every request with a correlation id, reusing X-Request-ID
// when the client sends one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = ports.GenerateCorrelationID()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(ports.WithCorrelationID(r.Context(), id)))
	})
}

// observe logs and counts each request by its route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.opts.Metrics.HTTPRequest(route, status)
		s.log.Debug("request served",
			"correlation_id", ports.GetCorrelationID(r.Context()),
			"method", r.Method,
			"route", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
