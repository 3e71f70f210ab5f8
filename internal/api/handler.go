// Package api implements the hosted Readyscope REST API.
// It provides assessment submission and read endpoints backed by Postgres
// and blob storage.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/readyscope/readyscope/internal/engagement"
	"github.com/readyscope/readyscope/internal/store"
	"github.com/readyscope/readyscope/pkg/scoring"
)

// Handler is the top-level API handler for the hosted Readyscope service.
type Handler struct {
	db            *sql.DB
	engagementSvc *engagement.Service
	storage       store.StorageClient
	engine        *scoring.Engine
	log           *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, engagementSvc *engagement.Service, storage store.StorageClient, engine *scoring.Engine, log *zap.Logger) *Handler {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		db:            db,
		engagementSvc: engagementSvc,
		storage:       storage,
		engine:        engine,
		log:           log,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /v1/assessments", h.handleSubmitAssessment)

	// Read endpoints
	mux.HandleFunc("GET /v1/assessments/{assessmentID}", h.handleGetAssessment)
	mux.HandleFunc("GET /v1/assessments/{assessmentID}/report", h.handleGetReport)
	mux.HandleFunc("GET /v1/engagements", h.handleListEngagements)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
