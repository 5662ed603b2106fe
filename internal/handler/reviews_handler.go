package handler

import (
	"errors"
	"net/http"

	"github.com/contactform/backend/internal/logging"
	"github.com/contactform/backend/internal/metrics"
	"github.com/contactform/backend/internal/reviews"
)

// ReviewsConfig holds the Places credentials for GET /reviews.
type ReviewsConfig struct {
	APIKey  string
	PlaceID string
}

// ReviewsHandler proxies place reviews.
type ReviewsHandler struct {
	fetcher reviews.Fetcher
	cfg     ReviewsConfig
}

func NewReviewsHandler(fetcher reviews.Fetcher, cfg ReviewsConfig) *ReviewsHandler {
	return &ReviewsHandler{fetcher: fetcher, cfg: cfg}
}

type errorResponse struct {
	Error string `json:"error"`
}

// List handles GET /reviews. Missing credentials fail with 500 before any
// upstream call.
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.cfg.APIKey == "" || h.cfg.PlaceID == "" {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "missing API key or place ID"})
		return
	}

	list, err := h.fetcher.FetchReviews(r.Context(), h.cfg.PlaceID, h.cfg.APIKey)
	metrics.RecordUpstream("places", err)
	if err == nil {
		writeJSON(w, http.StatusOK, list)
		return
	}

	log := logging.FromContext(r.Context())
	var uerr *reviews.UpstreamError
	switch {
	case errors.Is(err, reviews.ErrNoReviews):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "No reviews found"})
	case errors.As(err, &uerr):
		log.Warn("places api error", "status", uerr.StatusCode)
		writeJSON(w, upstreamStatus(uerr.StatusCode), errorResponse{Error: "error loading data from Google Places API"})
	case errors.Is(err, reviews.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "missing API key or place ID"})
	default:
		log.Error("places api request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "network error: " + err.Error()})
	}
}

// upstreamStatus passes through upstream error codes and maps anything that
// is not one to 502.
func upstreamStatus(code int) int {
	if code < http.StatusBadRequest || code > 599 {
		return http.StatusBadGateway
	}
	return code
}
