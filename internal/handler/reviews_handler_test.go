package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contactform/backend/internal/model"
	"github.com/contactform/backend/internal/reviews"
)

type mockFetcher struct {
	fetchFunc func(ctx context.Context, placeID, apiKey string) ([]model.Review, error)
	calls     int
}

func (m *mockFetcher) FetchReviews(ctx context.Context, placeID, apiKey string) ([]model.Review, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, placeID, apiKey)
	}
	return nil, nil
}

var testReviewsCfg = ReviewsConfig{APIKey: "key", PlaceID: "place"}

func getReviews(h *ReviewsHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	return rec
}

func TestReviewsHandler_List_Success(t *testing.T) {
	want := []model.Review{
		{Author: "Eva", Text: "Great", Rating: 5, Date: "2024-01-02 03:04:05"},
		{Author: "Petr", Text: "", Rating: 3, Date: "2023-12-31 23:59:59"},
	}
	var gotPlace, gotKey string
	h := NewReviewsHandler(&mockFetcher{
		fetchFunc: func(ctx context.Context, placeID, apiKey string) ([]model.Review, error) {
			gotPlace, gotKey = placeID, apiKey
			return want, nil
		},
	}, testReviewsCfg)

	rec := getReviews(h)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []model.Review
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if gotPlace != "place" || gotKey != "key" {
		t.Errorf("expected credentials to be passed through, got %q/%q", gotPlace, gotKey)
	}
}

func TestReviewsHandler_List_EmptyArray(t *testing.T) {
	h := NewReviewsHandler(&mockFetcher{
		fetchFunc: func(ctx context.Context, placeID, apiKey string) ([]model.Review, error) {
			return []model.Review{}, nil
		},
	}, testReviewsCfg)

	rec := getReviews(h)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestReviewsHandler_List_MissingConfig(t *testing.T) {
	for _, cfg := range []ReviewsConfig{{}, {APIKey: "key"}, {PlaceID: "place"}} {
		f := &mockFetcher{}
		h := NewReviewsHandler(f, cfg)

		rec := getReviews(h)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%+v: expected 500, got %d", cfg, rec.Code)
		}
		if f.calls != 0 {
			t.Errorf("%+v: fetcher must not be called", cfg)
		}
		var resp errorResponse
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Error != "missing API key or place ID" {
			t.Errorf("%+v: unexpected error %q", cfg, resp.Error)
		}
	}
}

func TestReviewsHandler_List_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantPrefix string
	}{
		{"no reviews", reviews.ErrNoReviews, http.StatusNotFound, "No reviews found"},
		{"upstream 403", &reviews.UpstreamError{StatusCode: http.StatusForbidden}, http.StatusForbidden, "error loading data from Google Places API"},
		{"upstream 502", &reviews.UpstreamError{StatusCode: http.StatusBadGateway}, http.StatusBadGateway, "error loading data from Google Places API"},
		{"upstream 204", &reviews.UpstreamError{StatusCode: http.StatusNoContent}, http.StatusBadGateway, "error loading data from Google Places API"},
		{"upstream 201", &reviews.UpstreamError{StatusCode: http.StatusCreated}, http.StatusBadGateway, "error loading data from Google Places API"},
		{"upstream 301", &reviews.UpstreamError{StatusCode: http.StatusMovedPermanently}, http.StatusBadGateway, "error loading data from Google Places API"},
		{"network", errors.New("dial tcp: i/o timeout"), http.StatusInternalServerError, "network error: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReviewsHandler(&mockFetcher{
				fetchFunc: func(ctx context.Context, placeID, apiKey string) ([]model.Review, error) {
					return nil, tt.err
				},
			}, testReviewsCfg)

			rec := getReviews(h)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !strings.HasPrefix(resp.Error, tt.wantPrefix) {
				t.Errorf("expected error starting with %q, got %q", tt.wantPrefix, resp.Error)
			}
		})
	}
}
