package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/contactform/backend/internal/repository"
)

// Handler holds the endpoints that are not tied to a single service.
type Handler struct {
	db         repository.DB
	corsOrigin string
}

func New(db repository.DB, corsOrigin string) *Handler {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	return &Handler{db: db, corsOrigin: corsOrigin}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
		if h.corsOrigin != "*" {
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
