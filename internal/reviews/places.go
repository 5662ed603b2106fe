// Package reviews fetches place reviews from the Google Places Details API and
// reshapes them for the website.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/contactform/backend/internal/model"
)

// DefaultBaseURL is the Places Details JSON endpoint.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"

var (
	// ErrNotConfigured is returned when the API key or place ID is missing.
	ErrNotConfigured = errors.New("reviews: api key or place id missing")
	// ErrNoReviews is returned when the place has no reviews section.
	ErrNoReviews = errors.New("reviews: no reviews found")
)

// UpstreamError reports a non-200 response from the Places API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("reviews: places api returned status %d", e.StatusCode)
}

// Fetcher returns the reviews for a place.
type Fetcher interface {
	FetchReviews(ctx context.Context, placeID, apiKey string) ([]model.Review, error)
}

// Client is a raw HTTP client for the Places Details API.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Fetcher = (*Client)(nil)

type placeReview struct {
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	Time       int64  `json:"time"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result *struct {
		Name    string         `json:"name"`
		Rating  float64        `json:"rating"`
		Reviews *[]placeReview `json:"reviews"`
	} `json:"result"`
}

// FetchReviews requests name, reviews and rating for placeID.
func (c *Client) FetchReviews(ctx context.Context, placeID, apiKey string) ([]model.Review, error) {
	if strings.TrimSpace(placeID) == "" || strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,reviews,rating")
	q.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reviews: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var out detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("reviews: decode: %w", err)
	}
	if out.Result == nil || out.Result.Reviews == nil {
		return nil, ErrNoReviews
	}

	reviews := make([]model.Review, 0, len(*out.Result.Reviews))
	for _, r := range *out.Result.Reviews {
		reviews = append(reviews, model.Review{
			Author: r.AuthorName,
			Text:   r.Text,
			Rating: r.Rating,
			Date:   time.Unix(r.Time, 0).UTC().Format(model.ReviewTimeLayout),
		})
	}
	return reviews, nil
}
