// Package captcha verifies reCAPTCHA-compatible tokens against the provider's
// siteverify endpoint. Uses raw HTTP calls (no SDK).
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Google's reCAPTCHA siteverify endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// ErrNotConfigured is returned when no secret key is configured.
var ErrNotConfigured = errors.New("captcha: not configured")

// Verifier checks a CAPTCHA response token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// RecaptchaVerifier calls the siteverify API.
type RecaptchaVerifier struct {
	SiteKey    string
	SecretKey  string
	VerifyURL  string
	httpClient *http.Client
}

// NewRecaptchaVerifier creates a RecaptchaVerifier. An empty verifyURL uses
// DefaultVerifyURL.
func NewRecaptchaVerifier(siteKey, secretKey, verifyURL string) *RecaptchaVerifier {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &RecaptchaVerifier{
		SiteKey:    siteKey,
		SecretKey:  secretKey,
		VerifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify reports whether token was accepted. An empty token is rejected
// without calling upstream.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if v.SecretKey == "" {
		return false, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", v.SecretKey)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha: siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha: siteverify returned status %d", resp.StatusCode)
	}

	var out siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("captcha: decode siteverify response: %w", err)
	}
	return out.Success, nil
}
