// Package server exposes the humanize engine and detection scorer over a
// small HTTP API. All semantics live in the engine and detector; this
// layer handles transport, request IDs, and the result cache.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/prosal/internal/apperr"
	"git.home.luguber.info/inful/prosal/internal/cache"
	"git.home.luguber.info/inful/prosal/internal/detector"
	"git.home.luguber.info/inful/prosal/internal/engine"
	"git.home.luguber.info/inful/prosal/internal/obs"
)

// Options configures the server.
type Options struct {
	Addr     string
	Engine   *engine.Engine
	Scorer   *detector.Scorer
	Cache    *cache.Cache // nil disables result caching
	Registry *prom.Registry
	Logger   *slog.Logger
}

// Server serves the prosal HTTP API.
type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	scorer     *detector.Scorer
	cache      *cache.Cache
	log        *slog.Logger
}

// New wires the API routes and middleware.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		engine: opts.Engine,
		scorer: opts.Scorer,
		cache:  opts.Cache,
		log:    opts.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/humanize", s.handleHumanize)
	mux.HandleFunc("POST /v1/detect", s.handleDetect)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if opts.Registry != nil {
		mux.Handle("GET /metrics", obs.HTTPHandler(opts.Registry))
	}

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.withMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Category {
		case apperr.CategoryValidation:
			status = http.StatusBadRequest
		case apperr.CategoryConfig:
			status = http.StatusUnprocessableEntity
		}
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
