package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"git.home.luguber.info/inful/prosal/internal/apperr"
	"git.home.luguber.info/inful/prosal/internal/cache"
	"git.home.luguber.info/inful/prosal/internal/engine"
)

// maxBodyBytes bounds request bodies; the pipeline cost is linear in input
// size and callers enforce their own timeouts.
const maxBodyBytes = 4 << 20

func (s *Server) handleHumanize(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, apperr.Validation("text must not be empty"))
		return
	}

	compute := func() ([]byte, error) {
		result, err := s.engine.Humanize(req)
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	}

	payload, err := s.computeCached(r.Context(), "humanize", req.Text, req, compute)
	if err != nil {
		s.log.Warn("humanize failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, payload)
}

type detectRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	compute := func() ([]byte, error) {
		result, err := s.scorer.Detect(req.Text, req.Lang)
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	}

	payload, err := s.computeCached(r.Context(), "detect", req.Text, req, compute)
	if err != nil {
		s.log.Warn("detect failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, payload)
}

// computeCached routes through the result cache when one is configured.
func (s *Server) computeCached(ctx context.Context, kind, text string, params any, compute func() ([]byte, error)) ([]byte, error) {
	if s.cache == nil {
		return compute()
	}
	key := cache.MakeKey(kind, text, params)
	return s.cache.GetOrCompute(ctx, key, compute)
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		writeError(w, apperr.Validation("invalid request body: %v", err))
		return false
	}
	return true
}

func writeRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
