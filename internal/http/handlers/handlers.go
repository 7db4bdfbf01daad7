package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/logging"
	"github.com/Alejomarqz/liganacionalgt-live/internal/session"
)

// Handler wires HTTP routes to the per-scope screen sessions. It is the HTTP
// stand-in for what a mobile screen does with the core: read Round tabs, read
// merged match cards, switch the active tab, and pull to refresh.
type Handler struct {
	sessions map[matches.Scope]*session.Session
	logger   *slog.Logger
}

// NewHandler constructs a Handler over the given sessions.
func NewHandler(sessions map[matches.Scope]*session.Session, logger *slog.Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", true, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness: every configured scope must have loaded its agenda
// at least once.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	for _, sess := range h.sessions {
		if !sess.Loaded() {
			writeError(w, r, http.StatusServiceUnavailable, "schedule not loaded for "+string(sess.Scope()), true, h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

type scheduleResponse struct {
	Scope        string          `json:"scope"`
	Rounds       []matches.Round `json:"rounds"`
	DefaultRound string          `json:"defaultRound"`
	ActiveRound  string          `json:"activeRound"`
}

// Schedule returns the bucketed schedule for a scope along with the default
// and active round keys.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if !sess.Loaded() {
		writeError(w, r, http.StatusServiceUnavailable, "schedule not loaded", true, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, scheduleResponse{
		Scope:        string(sess.Scope()),
		Rounds:       sess.Rounds(),
		DefaultRound: sess.DefaultRound(),
		ActiveRound:  sess.ActiveRound(),
	}, h.logger)
}

type roundResponse struct {
	Scope string                `json:"scope"`
	Key   string                `json:"key"`
	Items []matches.MatchRecord `json:"items"`
}

// Round returns the merged render view for one bucket: base records with the
// current live overlay applied.
func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	items, ok := sess.Merged(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown round", false, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, roundResponse{
		Scope: string(sess.Scope()),
		Key:   key,
		Items: items,
	}, h.logger)
}

type activateRequest struct {
	Round string `json:"round"`
}

// Activate switches the active round for a scope, the HTTP analog of a tab
// switch; polling restarts against the new bucket immediately.
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req activateRequest
	if err := decodeJSON(r, &req); err != nil || req.Round == "" {
		writeError(w, r, http.StatusBadRequest, "round is required", false, h.logger)
		return
	}
	if _, found := h.roundExists(sess, req.Round); !found {
		writeError(w, r, http.StatusNotFound, "unknown round", false, h.logger)
		return
	}
	sess.SetActiveRound(req.Round)
	logging.Info(h.requestLogger(r), "active round changed",
		logging.FieldScope, string(sess.Scope()),
		logging.FieldRound, req.Round,
	)
	writeJSON(w, http.StatusOK, map[string]string{"activeRound": req.Round}, h.logger)
}

// Refresh re-fetches the agenda for a scope (pull-to-refresh). Load failures
// surface here as a retryable upstream error.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Refresh(r.Context()); err != nil {
		logging.Error(h.requestLogger(r), "schedule refresh failed", err,
			logging.FieldScope, string(sess.Scope()),
		)
		writeError(w, r, http.StatusBadGateway, "schedule refresh failed", true, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"}, h.logger)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	scope := matches.Scope(chi.URLParam(r, "scope"))
	sess, ok := h.sessions[scope]
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown scope", false, h.logger)
		return nil, false
	}
	return sess, true
}

func (h *Handler) roundExists(sess *session.Session, key string) (matches.Round, bool) {
	for _, round := range sess.Rounds() {
		if round.Key == key {
			return round, true
		}
	}
	return matches.Round{}, false
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context(), h.logger)
}
